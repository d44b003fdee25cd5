package kvstore

import (
	"context"
	"path/filepath"
	"testing"
)

type record struct {
	Name string `json:"name"`
	N    int    `json:"n"`
}

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	var got record
	found, err := store.Get(ctx, "missing", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("missing key reported as found")
	}

	if err := store.Set(ctx, "k", record{Name: "a", N: 1}); err != nil {
		t.Fatalf("set: %v", err)
	}
	found, err = store.Get(ctx, "k", &got)
	if err != nil || !found {
		t.Fatalf("get after set: found=%v err=%v", found, err)
	}
	if got.Name != "a" || got.N != 1 {
		t.Fatalf("unexpected record %+v", got)
	}

	if err := store.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if found, _ := store.Get(ctx, "k", &got); found {
		t.Fatal("key should be gone after remove")
	}
}

func TestMemorySetOverwritesWhole(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if err := store.Set(ctx, "k", record{Name: "a", N: 1}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "k", record{Name: "b"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got record
	if found, err := store.Get(ctx, "k", &got); !found || err != nil {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if got.Name != "b" || got.N != 0 {
		t.Fatalf("expected whole overwrite, got %+v", got)
	}
}

func TestFilePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	ctx := context.Background()

	first := NewFile(path)
	if err := first.Set(ctx, "fx_user", record{Name: "dana"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	// simulate a page reload: a fresh store over the same path
	second := NewFile(path)
	var got record
	found, err := second.Get(ctx, "fx_user", &got)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if got.Name != "dana" {
		t.Fatalf("unexpected record %+v", got)
	}

	if err := second.Remove(ctx, "fx_user"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if found, _ := NewFile(path).Get(ctx, "fx_user", &got); found {
		t.Fatal("key should be gone after remove")
	}
}

func TestFileRemoveMissingKeyIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := NewFile(path).Remove(context.Background(), "nope"); err != nil {
		t.Fatalf("remove on empty store: %v", err)
	}
}
