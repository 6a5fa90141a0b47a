package cache

import (
	"testing"

	"bookshelf/config"
)

func TestMemoryRequestCacher(t *testing.T) {
	cacher := CreateMemoryCache(3)

	for _, v := range []string{"1", "2", "3", "4"} {
		if err := cacher.Write("alice", []byte(v)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	_ = cacher.Write("bob", []byte("x"))

	got, err := cacher.Read("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"4", "3", "2"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	empty, err := cacher.Read("carol")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected no entries, got %v, %v", empty, err)
	}
}

func TestOpen(t *testing.T) {
	cacher, err := Open(&config.Config{ActivityDriver: "memory", ActivityMax: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cacher.(*MemoryRequestCacher); !ok {
		t.Fatalf("expected memory cacher, got %T", cacher)
	}

	if _, err := Open(&config.Config{ActivityDriver: "memcached"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
