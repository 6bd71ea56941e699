package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	rec := testStoreRecord()

	if err := store.Save(ctx, "alice", rec, 0); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := store.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.String() != rec.String() {
		t.Fatalf("record did not round-trip: %s vs %s", loaded.String(), rec.String())
	}

	// The store hands out copies; mutating a loaded record must not affect
	// later loads.
	loaded.Key[0] ^= 0xFF

	again, err := store.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if again.String() != rec.String() {
		t.Fatal("stored record was mutated through a loaded copy")
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.Load(context.Background(), "missing"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestMemoryStoreTTL(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, "alice", testStoreRecord(), time.Millisecond); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := store.Load(ctx, "alice"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound after expiry, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, "alice", testStoreRecord(), 0); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := store.Delete(ctx, "alice"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := store.Load(ctx, "alice"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, "alice"); err != nil {
		t.Fatalf("Delete of missing name: %v", err)
	}
}
