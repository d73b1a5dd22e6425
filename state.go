package foundation

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Status messages set by the state lifecycle.
const (
	statusOnline   = "core online"
	statusRestored = "core state restored"
)

// SystemState is the whole mutable state of the foundation: the ledger, the
// tension record, the active user pointer and a status message. It is
// created once at startup, either fresh or restored from a snapshot, and is
// mutated exclusively through the Store.
type SystemState struct {
	StatusMessage string
	ActiveUser    string
	Accounts      *Accounts
	Tension       Tension
}

// newSystemState returns the canonical fresh state.
func newSystemState() *SystemState {
	return &SystemState{
		StatusMessage: statusOnline,
		ActiveUser:    "User_A",
		Accounts:      NewAccounts(),
		Tension:       newTension(),
	}
}

// MarshalJSON encodes the snapshot shape:
//
//	{status_message, active_user, accounts, tension}
func (s *SystemState) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("status_message", s.StatusMessage)
	w.Append("active_user", s.ActiveUser)
	w.Append("accounts", s.Accounts)
	w.Append("tension", s.Tension)
	return w.MarshalJSON()
}

func (s *SystemState) UnmarshalJSON(data []byte) error {
	var raw struct {
		StatusMessage string    `json:"status_message"`
		ActiveUser    string    `json:"active_user"`
		Accounts      *Accounts `json:"accounts"`
		Tension       Tension   `json:"tension"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Accounts == nil {
		return fmt.Errorf("snapshot has no accounts")
	}
	s.StatusMessage = raw.StatusMessage
	s.ActiveUser = raw.ActiveUser
	s.Accounts = raw.Accounts
	s.Tension = raw.Tension
	return nil
}

// Store owns the process-wide SystemState. All mutations go through its
// methods, which persist the updated state through the gateway before
// returning. There is exactly one logical writer by construction, so no
// locking is involved.
type Store struct {
	gateway *Gateway
	state   *SystemState
}

// Open creates the Store, restoring the persisted snapshot when one exists
// and parses, and falling back to the canonical fresh state otherwise.
// A fresh state is written immediately so that the snapshot key always
// exists after Open.
func Open(g *Gateway) (*Store, error) {
	if g == nil {
		return nil, fmt.Errorf("open store: %w", ErrUnavailable)
	}
	s := &Store{gateway: g}
	if state, ok := g.Load(); ok {
		state.StatusMessage = statusRestored
		s.state = state
		return s, nil
	}
	s.state = newSystemState()
	if err := g.Save(s.state); err != nil {
		return nil, fmt.Errorf("initial snapshot write failed: %w", err)
	}
	return s, nil
}

// State returns the current state for reading. Mutation must go through the
// Store's methods.
func (s *Store) State() *SystemState { return s.state }

// StatusMessage returns the current status line.
func (s *Store) StatusMessage() string { return s.state.StatusMessage }

// ActiveUser returns the current active account name.
func (s *Store) ActiveUser() string { return s.state.ActiveUser }

// Balance returns the stored balance, or zero money when the account or
// currency is absent. It never fails.
func (s *Store) Balance(account string, c Currency) Money {
	return s.state.Accounts.Balance(account, c)
}

// ActiveUserBalances returns all balances of the given account, or an empty
// map for an unknown one.
func (s *Store) ActiveUserBalances(account string) map[Currency]Money {
	acc := s.state.Accounts.Account(account)
	if acc == nil {
		return map[Currency]Money{}
	}
	return acc.Balances()
}

// SetActiveUser updates the active-user pointer and persists.
// Unknown names fail with ErrNotFound.
func (s *Store) SetActiveUser(name string) error {
	if !s.state.Accounts.Has(name) {
		return fmt.Errorf("set active user %q: %w", name, ErrNotFound)
	}
	s.state.ActiveUser = name
	return s.gateway.Save(s.state)
}

// Tension returns the current tension record.
func (s *Store) Tension() Tension { return s.state.Tension }

// AddTension applies delta to the tension value, floor-clamped at zero, and
// persists the updated state.
func (s *Store) AddTension(delta decimal.Decimal) error {
	s.state.Tension = s.state.Tension.add(delta)
	return s.gateway.Save(s.state)
}

// Reset discards the persisted snapshot and all in-memory balances and
// reinitializes to the canonical fresh state. The fresh state is written on
// the next mutation, mirroring an erase.
func (s *Store) Reset() error {
	if err := s.gateway.Erase(); err != nil {
		return err
	}
	s.state = newSystemState()
	return nil
}
