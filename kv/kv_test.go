package kv

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestStore_PutGetDelete(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok=%v, err=%v, want absent", ok, err)
	}

	if err := store.Put("k", []byte("v1")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if v, ok, err := store.Get("k"); err != nil || !ok || !bytes.Equal(v, []byte("v1")) {
		t.Errorf("Get(k) = %q, ok=%v, err=%v, want v1", v, ok, err)
	}

	// Put overwrites.
	if err := store.Put("k", []byte("v2")); err != nil {
		t.Fatalf("Put() overwrite failed: %v", err)
	}
	if v, _, _ := store.Get("k"); !bytes.Equal(v, []byte("v2")) {
		t.Errorf("Get(k) after overwrite = %q, want v2", v)
	}

	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("Get(k) after Delete still found the key")
	}
	// Deleting an absent key is not an error.
	if err := store.Delete("k"); err != nil {
		t.Errorf("Delete(absent) failed: %v", err)
	}
}

func TestStore_DurableAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "state.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Put("k", []byte("persisted")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	if v, ok, _ := reopened.Get("k"); !ok || !bytes.Equal(v, []byte("persisted")) {
		t.Errorf("Get(k) after reopen = %q, ok=%v", v, ok)
	}
}
