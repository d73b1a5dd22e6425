package foundation

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/PaesslerAG/jsonpath"
)

// stateKey is the fixed key the snapshot lives under in the key-value store.
const stateKey = "msgai/state"

// KV is the durable local key-value store the gateway writes through.
// kv.Store is the SQLite implementation used by the CLI.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	// Put stores the value, overwriting any prior one.
	Put(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Gateway serializes and restores the combined SystemState to and from the
// key-value store, handling legacy snapshot shapes on the way in.
type Gateway struct {
	kv KV
}

// NewGateway creates a Gateway over the given store.
func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv}
}

// Save serializes the full state under the fixed key, overwriting the prior
// snapshot. Write failures propagate; they are never swallowed.
func (g *Gateway) Save(state *SystemState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("persist error: cannot marshal state: %w", err)
	}
	if err := g.kv.Put(stateKey, data); err != nil {
		return fmt.Errorf("persist error: cannot write snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot. It returns (nil, false) when there is no
// snapshot, and also when the stored one is malformed: a parse failure is
// recovered locally by discarding the snapshot, so the caller falls back to
// a fresh state. On success the Archive-account migration is applied before
// returning.
func (g *Gateway) Load() (*SystemState, bool) {
	data, ok, err := g.kv.Get(stateKey)
	if err != nil || !ok {
		return nil, false
	}

	// Probe the raw shape first: a snapshot without an accounts object is
	// not worth a strict decode.
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		log.Printf("discard-snapshot reason=%q", err)
		return nil, false
	}
	if _, err := jsonpath.Get("$.accounts", probe); err != nil {
		log.Printf("discard-snapshot reason=%q", "no accounts object")
		return nil, false
	}

	var state SystemState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("discard-snapshot reason=%q", err)
		return nil, false
	}

	// Legacy snapshots predate the Archive account.
	if _, err := jsonpath.Get("$.accounts."+ArchiveAccount, probe); err != nil {
		log.Printf("migrate-snapshot add=%q", ArchiveAccount)
	}
	state.Accounts.ensureArchive()

	return &state, true
}

// Erase discards the persisted snapshot.
func (g *Gateway) Erase() error {
	if err := g.kv.Delete(stateKey); err != nil {
		return fmt.Errorf("persist error: cannot delete snapshot: %w", err)
	}
	return nil
}
