package foundation

import (
	"encoding/base64"
	"fmt"
	"time"
)

// MimicLabel is the compliance-looking metadata attached to non-internal
// transfers. It is cosmetic, external-facing data built to be accepted by
// existing rails; it is not part of ledger truth.
type MimicLabel struct {
	TransactionAuthID string `json:"transaction_auth_id"`
	ComplianceStatus  string `json:"compliance_status"`
	LedgerType        string `json:"ledger_type"`
	LegalFootprint    string `json:"legal_footprint"`
	AmountISO         string `json:"amount_iso"`
	CurrencyISO       string `json:"currency_iso"`
	MimicryProtocol   string `json:"mimicry_protocol"`
}

// NewMimicLabel builds the label for a non-internal transfer. It is a pure
// function of its inputs plus the clock: the auth id derives from a hash of
// amount, recipient and timestamp.
func NewMimicLabel(net Money, recipient string, mode TransferMode) MimicLabel {
	authID := mimicAuthID(net, recipient, time.Now().UTC().Format(time.RFC3339))

	ledgerType := "EXTERNAL_BANK_TRANSFER"
	if mode == ATM {
		ledgerType = "CASH_DISPENSE_READY"
	}

	return MimicLabel{
		TransactionAuthID: authID,
		ComplianceStatus:  "VERIFIED_BY_MSGAI_CORE",
		LedgerType:        ledgerType,
		LegalFootprint:    "TAX_ADJUSTED_AT_SOURCE",
		AmountISO:         net.StringFixed(2),
		CurrencyISO:       string(USD),
		MimicryProtocol:   "ISO_20022_COMPATIBLE",
	}
}

// mimicAuthID hashes amount, recipient and timestamp into the auth id.
// The seed carries the amount in its bare decimal form (90, not 90.00);
// only amount_iso uses the fixed two-decimal rendering.
func mimicAuthID(net Money, recipient, timestamp string) string {
	seed := fmt.Sprintf("LOGOS_%s_%s_%s", net.Amount().String(), recipient, timestamp)
	return "AUTH-" + base64.StdEncoding.EncodeToString([]byte(seed))[:12]
}
