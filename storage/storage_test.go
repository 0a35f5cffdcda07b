package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestMemorySetGetDelete(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Set(ctx, "quiz-categories", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, err := store.Get(ctx, "quiz-categories")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(value) != `[]` {
		t.Fatalf("expected %q, got %q", `[]`, string(value))
	}

	if err := store.Delete(ctx, "quiz-categories"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "quiz-categories"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if err := store.Set(ctx, "k", []byte("abc")); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	value[0] = 'x'

	again, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(again) != "abc" {
		t.Fatalf("stored value mutated through returned slice: %q", string(again))
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "techquiz.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Set(ctx, "quiz-questions", []byte(`[{"id":"q-1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	// Overwrite through the upsert path.
	if err := store.Set(ctx, "quiz-questions", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	value, err := store.Get(ctx, "quiz-questions")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(value) != `[]` {
		t.Fatalf("expected overwritten value %q, got %q", `[]`, string(value))
	}

	if err := store.Delete(ctx, "quiz-questions"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "quiz-questions"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	if _, err := OpenSQLite("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}
