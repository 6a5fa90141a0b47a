package db

import (
	"context"
	"errors"
	"testing"

	"bookshelf/models"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	storage := CreateMemoryStorage(testBooks()...)

	c, err := storage.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(c.Books))
	}

	// the loaded copy is independent of what's stored
	c.Books[0].Title = "changed"
	again, _ := storage.Load(ctx)
	if again.Books[0].Title != testBooks()[0].Title {
		t.Fatalf("loaded collection aliases stored data")
	}

	c.Books = c.Books[:1]
	if err := storage.Save(ctx, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storage.Saves() != 1 {
		t.Fatalf("expected 1 save, got %d", storage.Saves())
	}
	again, _ = storage.Load(ctx)
	if len(again.Books) != 1 || again.Books[0].Title != "changed" {
		t.Fatalf("unexpected books: %+v", again.Books)
	}
}

func TestMemoryStorage_Errors(t *testing.T) {
	ctx := context.Background()
	storage := CreateMemoryStorage()
	storage.SaveErr = errors.New("full")

	if err := storage.Save(ctx, &models.Collection{}); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if storage.Saves() != 0 {
		t.Fatalf("failed save must not count")
	}

	storage.LoadErr = errors.New("gone")
	if _, err := storage.Load(ctx); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestStorageErrorMessage(t *testing.T) {
	err := unavailable("load db.json", errors.New("permission denied"))
	if got, want := err.Error(), "load db.json: storage unavailable: permission denied"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if errors.Is(err, ErrCorruptData) {
		t.Fatalf("unavailable error must not match ErrCorruptData")
	}
}
