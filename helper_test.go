package foundation

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// memKV is an in-memory KV for tests.
type memKV struct {
	m map[string][]byte
	// failPut makes every Put fail, to exercise write-error propagation.
	failPut error
}

func newMemKV() *memKV { return &memKV{m: make(map[string][]byte)} }

func (k *memKV) Get(key string) ([]byte, bool, error) {
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *memKV) Put(key string, value []byte) error {
	if k.failPut != nil {
		return k.failPut
	}
	k.m[key] = value
	return nil
}

func (k *memKV) Delete(key string) error {
	delete(k.m, key)
	return nil
}

// newTestStore opens a Store over a fresh in-memory KV.
func newTestStore(t *testing.T) (*Store, *memKV) {
	t.Helper()
	kv := newMemKV()
	store, err := Open(NewGateway(kv))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return store, kv
}

// seed credits an account balance directly, bypassing the transfer engine.
func seed(t *testing.T, s *Store, account string, c Currency, amount float64) {
	t.Helper()
	acc := s.state.Accounts.Account(account)
	if acc == nil {
		t.Fatalf("seed: unknown account %q", account)
	}
	acc.credit(c, newDecimal(amount))
}

// stateDiff compares two states, allowing the unexported ledger internals.
func stateDiff(a, b *SystemState) string {
	return cmp.Diff(a, b, cmp.AllowUnexported(Accounts{}, Account{}))
}

// cloneState deep-copies a state through its snapshot encoding.
func cloneState(t *testing.T, s *SystemState) *SystemState {
	t.Helper()
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("cloneState: marshal failed: %v", err)
	}
	var clone SystemState
	if err := json.Unmarshal(data, &clone); err != nil {
		t.Fatalf("cloneState: unmarshal failed: %v", err)
	}
	return &clone
}

// usd is a helper for tests to create USD money from const.
func usd(v float64) Money { return M(v, USD) }
