package foundation

import (
	"encoding/json"
	"slices"

	"github.com/shopspring/decimal"
)

// Reserved account collecting the tax split of non-internal transfers.
const ArchiveAccount = "Tax_Archive"

// initialAccountNames is the fixed set of accounts a fresh ledger starts
// with. All initial balances are zero.
var initialAccountNames = []string{"User_A", "User_B", "User_C", ArchiveAccount}

// Account holds one balance per currency of the fixed set.
// Balances never go negative: every debit is checked first.
type Account struct {
	balances map[Currency]decimal.Decimal
}

func newAccount() *Account {
	a := &Account{balances: make(map[Currency]decimal.Decimal, len(Currencies))}
	for _, c := range Currencies {
		a.balances[c] = decimal.Zero
	}
	return a
}

// Balance returns the account's balance in the given currency, or zero
// money when the currency was never touched.
func (a *Account) Balance(c Currency) Money {
	if a == nil {
		return Money{cur: c}
	}
	return Money{value: a.balances[c], cur: c}
}

// Balances returns a copy of all balances, in canonical currency order.
func (a *Account) Balances() map[Currency]Money {
	out := make(map[Currency]Money, len(Currencies))
	for _, c := range Currencies {
		out[c] = a.Balance(c)
	}
	return out
}

func (a *Account) credit(c Currency, v decimal.Decimal) {
	a.balances[c] = a.balances[c].Add(v)
}

func (a *Account) debit(c Currency, v decimal.Decimal) {
	a.balances[c] = a.balances[c].Sub(v)
}

// MarshalJSON encodes the account as a flat currency→number object, in
// canonical currency order to keep snapshots diffable.
func (a *Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, c := range Currencies {
		w.Number(string(c), a.balances[c])
	}
	return w.MarshalJSON()
}

// UnmarshalJSON accepts both bare numbers (current snapshots) and quoted
// decimals, and ignores currencies outside the fixed set.
func (a *Account) UnmarshalJSON(data []byte) error {
	var raw map[Currency]decimal.Decimal
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.balances = make(map[Currency]decimal.Decimal, len(Currencies))
	for _, c := range Currencies {
		// absent currencies settle at zero, the zero decimal is a valid 0.
		a.balances[c] = raw[c]
	}
	return nil
}

// Accounts is the ledger: a mapping from account name to Account.
// It always contains the Archive account once initialized or migrated.
type Accounts struct {
	accounts map[string]*Account
}

// NewAccounts creates the fresh ledger with the fixed set of named accounts,
// every currency balance zero. Deterministic, no side effects.
func NewAccounts() *Accounts {
	a := &Accounts{accounts: make(map[string]*Account, len(initialAccountNames))}
	for _, name := range initialAccountNames {
		a.accounts[name] = newAccount()
	}
	return a
}

// Has reports whether name is a known ledger account.
func (l *Accounts) Has(name string) bool {
	_, ok := l.accounts[name]
	return ok
}

// Names returns all account names in lexical order.
func (l *Accounts) Names() []string {
	names := make([]string, 0, len(l.accounts))
	for name := range l.accounts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Account returns the named account, or nil if unknown.
func (l *Accounts) Account(name string) *Account {
	return l.accounts[name]
}

// Balance returns the stored balance or zero money when the account or
// currency is absent. It never fails.
func (l *Accounts) Balance(name string, c Currency) Money {
	return l.accounts[name].Balance(c)
}

// ensureArchive synthesizes the Archive account with all-zero balances when
// a legacy snapshot predates it. Restoration must never fail merely because
// of this absence.
func (l *Accounts) ensureArchive() {
	if !l.Has(ArchiveAccount) {
		l.accounts[ArchiveAccount] = newAccount()
	}
}

// MarshalJSON encodes accounts in lexical name order.
func (l *Accounts) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, name := range l.Names() {
		w.Append(name, l.accounts[name])
	}
	return w.MarshalJSON()
}

func (l *Accounts) UnmarshalJSON(data []byte) error {
	var raw map[string]*Account
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.accounts = make(map[string]*Account, len(raw))
	for name, acc := range raw {
		if acc == nil {
			acc = newAccount()
		}
		l.accounts[name] = acc
	}
	return nil
}
