package foundation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestGateway_RoundTrip(t *testing.T) {
	kv := newMemKV()
	g := NewGateway(kv)

	state := newSystemState()
	state.ActiveUser = "User_C"
	state.Accounts.Account("User_B").credit(JPY, decimal.NewFromInt(5000))
	state.Tension = state.Tension.add(decimal.NewFromFloat(0.123))

	if err := g.Save(state); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	restored, ok := g.Load()
	if !ok {
		t.Fatal("Load() found no snapshot after Save()")
	}
	if diff := stateDiff(state, restored); diff != "" {
		t.Errorf("restored state differs (-saved +restored):\n%s", diff)
	}
}

func TestGateway_Load_Absent(t *testing.T) {
	g := NewGateway(newMemKV())
	if _, ok := g.Load(); ok {
		t.Error("Load() on empty store reported a snapshot")
	}
}

func TestGateway_Load_Malformed(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"not json", "{truncated"},
		{"no accounts object", `{"status_message":"x","active_user":"User_A"}`},
		{"accounts not an object", `{"accounts":42}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kv := newMemKV()
			kv.m[stateKey] = []byte(tc.data)
			g := NewGateway(kv)
			if _, ok := g.Load(); ok {
				t.Error("Load() accepted a malformed snapshot")
			}
		})
	}
}

func TestGateway_Load_LegacyArchiveMigration(t *testing.T) {
	// Snapshot predating the archive account, with float balances.
	legacy := `{
		"status_message": "core online",
		"active_user": "User_B",
		"accounts": {
			"User_A": {"USD": 12.5, "JPY": 0, "EUR": 0, "BTC": 0, "ETH": 0, "MATIC": 0},
			"User_B": {"USD": 0, "JPY": 300, "EUR": 0, "BTC": 0, "ETH": 0, "MATIC": 0},
			"User_C": {"USD": 0, "JPY": 0, "EUR": 0, "BTC": 0, "ETH": 0, "MATIC": 0}
		},
		"tension": {"value": 0.04, "max_limit": 0.5, "increase_rate": 0.00001}
	}`
	kv := newMemKV()
	kv.m[stateKey] = []byte(legacy)

	state, ok := NewGateway(kv).Load()
	if !ok {
		t.Fatal("Load() rejected a legacy snapshot")
	}

	if !state.Accounts.Has(ArchiveAccount) {
		t.Fatal("migration did not synthesize the archive account")
	}
	for _, c := range Currencies {
		if b := state.Accounts.Balance(ArchiveAccount, c); !b.IsZero() {
			t.Errorf("synthesized archive balance %s = %s, want zero", c, b)
		}
	}
	// All other fields survive the migration untouched.
	if state.ActiveUser != "User_B" {
		t.Errorf("active user = %q, want User_B", state.ActiveUser)
	}
	if got := state.Accounts.Balance("User_A", USD); !got.Equal(M(12.5, USD)) {
		t.Errorf("User_A USD = %s, want 12.5", got)
	}
	if got := state.Accounts.Balance("User_B", JPY); !got.Equal(M(300, JPY)) {
		t.Errorf("User_B JPY = %s, want 300", got)
	}
	if !state.Tension.Value.Equal(decimal.NewFromFloat(0.04)) {
		t.Errorf("tension = %s, want 0.04", state.Tension.Value)
	}
}

func TestGateway_Save_WriteErrorPropagates(t *testing.T) {
	kv := newMemKV()
	kv.failPut = errors.New("disk full")

	err := NewGateway(kv).Save(newSystemState())
	if err == nil || !errors.Is(err, kv.failPut) {
		t.Errorf("Save() error = %v, want wrapped disk full", err)
	}
}
