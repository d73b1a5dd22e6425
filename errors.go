package foundation

import "errors"

// Domain errors. They are business-level conditions, not system failures;
// callers match them with errors.Is and decide how to surface them.
var (
	// ErrNotFound reports a referenced account that does not exist where
	// existence is required.
	ErrNotFound = errors.New("account not found")

	// ErrInvalidAmount reports a transfer amount that is not strictly
	// positive. Rejecting it keeps every balance non-negative.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds reports a debit that exceeds the available
	// balance. The balance check runs before any mutation, so a failed
	// transfer leaves the ledger untouched.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnavailable reports a required collaborator that is not wired in.
	ErrUnavailable = errors.New("required collaborator unavailable")
)
