package foundation

import (
	"strings"
	"testing"
)

func TestNewMimicLabel(t *testing.T) {
	label := NewMimicLabel(usd(90), "OutsideBank", External)

	if !strings.HasPrefix(label.TransactionAuthID, "AUTH-") {
		t.Errorf("auth id = %q, want AUTH- prefix", label.TransactionAuthID)
	}
	if got := len(strings.TrimPrefix(label.TransactionAuthID, "AUTH-")); got != 12 {
		t.Errorf("auth id hash length = %d, want 12", got)
	}
	if label.ComplianceStatus != "VERIFIED_BY_MSGAI_CORE" {
		t.Errorf("compliance status = %q", label.ComplianceStatus)
	}
	if label.LedgerType != "EXTERNAL_BANK_TRANSFER" {
		t.Errorf("ledger type = %q, want EXTERNAL_BANK_TRANSFER", label.LedgerType)
	}
	if label.LegalFootprint != "TAX_ADJUSTED_AT_SOURCE" {
		t.Errorf("legal footprint = %q", label.LegalFootprint)
	}
	if label.AmountISO != "90.00" {
		t.Errorf("amount = %q, want 90.00", label.AmountISO)
	}
	if label.CurrencyISO != "USD" {
		t.Errorf("currency = %q, want USD", label.CurrencyISO)
	}
	if label.MimicryProtocol != "ISO_20022_COMPATIBLE" {
		t.Errorf("protocol = %q", label.MimicryProtocol)
	}
}

func TestMimicAuthID(t *testing.T) {
	// Golden values pin the bare decimal form in the seed: 90 encodes as
	// "90", not "90.00".
	testCases := []struct {
		amount Money
		want   string
	}{
		{usd(90), "AUTH-TE9HT1NfOTBf"},
		{usd(90.5), "AUTH-TE9HT1NfOTAu"},
	}
	for _, tc := range testCases {
		got := mimicAuthID(tc.amount, "OutsideBank", "2026-08-31T12:00:00Z")
		if got != tc.want {
			t.Errorf("mimicAuthID(%s) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestNewMimicLabel_ATM(t *testing.T) {
	label := NewMimicLabel(usd(45), "StreetCorner", ATM)
	if label.LedgerType != "CASH_DISPENSE_READY" {
		t.Errorf("ledger type = %q, want CASH_DISPENSE_READY", label.LedgerType)
	}
}
