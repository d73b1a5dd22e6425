package foundation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransferMode selects the fee policy of a universal transfer.
type TransferMode string

const (
	// Internal transfers stay between ledger accounts and carry no fee.
	Internal TransferMode = "INTERNAL"
	// External transfers leave the tracked ledger through a bank rail.
	External TransferMode = "EXTERNAL"
	// ATM transfers leave the tracked ledger as dispensed cash.
	ATM TransferMode = "ATM"
)

// ParseTransferMode parses a string into a TransferMode.
func ParseTransferMode(s string) (TransferMode, error) {
	switch TransferMode(s) {
	case Internal, External, ATM:
		return TransferMode(s), nil
	default:
		return "", fmt.Errorf("unknown transfer mode: %q", s)
	}
}

// Fixed design parameters of the universal transfer. Not configurable at
// call time.
var (
	// externalTaxRatio is the share of a non-internal transfer split off to
	// the Archive account.
	externalTaxRatio = decimal.NewFromFloat(0.10)
	// internalTensionRate converts an internal amount into tension.
	internalTensionRate = decimal.NewFromFloat(0.00001)
	// externalTensionRate is the 100x friction cost of leaving the ledger.
	externalTensionRate = decimal.NewFromFloat(0.001)
)

// Receipt is the result record of a universal transfer.
type Receipt struct {
	Success   bool
	NetValue  Money
	TaxValue  Money
	MimicData *MimicLabel
	Message   string
}

// MarshalJSON encodes the receipt in its canonical field order.
func (r Receipt) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("success", r.Success)
	w.Number("net_value", r.NetValue.Amount())
	w.Number("tax_value", r.TaxValue.Amount())
	w.Append("mimic_data", r.MimicData)
	w.Append("message", r.Message)
	return w.MarshalJSON()
}

// Transfer moves amount from sender to recipient. It is the lower-level
// primitive: no fee, no tension. When the recipient is a known ledger
// account the amount is credited to it; otherwise the funds leave the
// tracked ledger entirely (external recipients are not modeled as
// accounts). The updated state is persisted and returned.
func (s *Store) Transfer(sender, recipient string, amount Money) (*SystemState, error) {
	accounts := s.state.Accounts
	isInternal := accounts.Has(recipient)
	c := amount.Currency()

	// A non-positive amount would credit the sender and drive the
	// recipient below zero.
	if !amount.Amount().IsPositive() {
		return nil, fmt.Errorf("amount must be positive, got %s: %w", amount, ErrInvalidAmount)
	}

	// Balance check runs before any mutation. An unknown sender holds
	// nothing and cannot cover any transfer.
	from := accounts.Account(sender)
	if from == nil || accounts.Balance(sender, c).LessThan(amount) {
		return nil, fmt.Errorf("%s has not enough %s: %w", sender, c, ErrInsufficientFunds)
	}

	from.debit(c, amount.Amount())
	if isInternal {
		accounts.Account(recipient).credit(c, amount.Amount())
	}

	if err := s.gateway.Save(s.state); err != nil {
		return nil, err
	}
	return s.state, nil
}

// UniversalTransfer runs the full transfer act in USD: balance check, tax
// split, ledger update, tension conversion, persistence, and the mimic
// label for non-internal modes.
//
// Non-internal modes split 10% of the amount to the Archive account; the
// net amount is considered received by the external world and is not
// credited anywhere in the tracked ledger. Internal mode credits the full
// amount to the recipient when it is a known account; an unknown recipient
// still costs the sender the full amount (see UnknownRecipient note in
// DESIGN.md).
func (s *Store) UniversalTransfer(sender, recipient string, amount Money, mode TransferMode) (*Receipt, error) {
	accounts := s.state.Accounts
	usd := M(amount.Amount(), USD)

	if !usd.Amount().IsPositive() {
		return nil, fmt.Errorf("amount must be positive, got %s: %w", usd, ErrInvalidAmount)
	}

	from := accounts.Account(sender)
	if from == nil || accounts.Balance(sender, USD).LessThan(usd) {
		return nil, fmt.Errorf("%s has not enough USD: %w", sender, ErrInsufficientFunds)
	}

	ratio := externalTaxRatio
	if mode == Internal {
		ratio = decimal.Zero
	}
	tax := usd.MulRatio(ratio)
	net := usd.Sub(tax)

	// The sender pays the full amount, not the net.
	from.debit(USD, usd.Amount())

	if mode == Internal {
		if accounts.Has(recipient) {
			accounts.Account(recipient).credit(USD, usd.Amount())
		}
	} else {
		accounts.Account(ArchiveAccount).credit(USD, tax.Amount())
	}

	var mimic *MimicLabel
	message := "internal circulation complete"
	if mode != Internal {
		label := NewMimicLabel(net, recipient, mode)
		mimic = &label
		message = "external transfer complete"
	}

	// Convert the friction of the act into tension.
	rate := internalTensionRate
	if mode != Internal {
		rate = externalTensionRate
	}
	s.state.Tension = s.state.Tension.add(usd.Amount().Mul(rate))

	if err := s.gateway.Save(s.state); err != nil {
		return nil, err
	}

	return &Receipt{
		Success:   true,
		NetValue:  net,
		TaxValue:  tax,
		MimicData: mimic,
		Message:   message,
	}, nil
}
