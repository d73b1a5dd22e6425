package foundation

import (
	"slices"
	"testing"
)

func TestNewAccounts_Fresh(t *testing.T) {
	accounts := NewAccounts()

	wantNames := []string{"Tax_Archive", "User_A", "User_B", "User_C"}
	if got := accounts.Names(); !slices.Equal(got, wantNames) {
		t.Errorf("Names() = %v, want %v", got, wantNames)
	}

	for _, name := range wantNames {
		for _, c := range Currencies {
			if b := accounts.Balance(name, c); !b.IsZero() {
				t.Errorf("fresh balance %s.%s = %s, want zero", name, c, b)
			}
		}
	}
}

func TestAccounts_Balance_NeverFails(t *testing.T) {
	accounts := NewAccounts()

	testCases := []struct {
		name     string
		account  string
		currency Currency
	}{
		{"known account, untouched currency", "User_A", BTC},
		{"unknown account", "Nobody", USD},
		{"archive account", ArchiveAccount, MATIC},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := accounts.Balance(tc.account, tc.currency)
			if !b.IsZero() {
				t.Errorf("Balance(%q, %q) = %s, want zero", tc.account, tc.currency, b)
			}
			if b.Currency() != tc.currency {
				t.Errorf("Balance(%q, %q).Currency() = %q", tc.account, tc.currency, b.Currency())
			}
		})
	}
}

func TestAccounts_EnsureArchive(t *testing.T) {
	accounts := NewAccounts()
	delete(accounts.accounts, ArchiveAccount)

	accounts.ensureArchive()

	if !accounts.Has(ArchiveAccount) {
		t.Fatal("ensureArchive() did not synthesize the archive account")
	}
	for _, c := range Currencies {
		if b := accounts.Balance(ArchiveAccount, c); !b.IsZero() {
			t.Errorf("synthesized archive balance %s = %s, want zero", c, b)
		}
	}
}
