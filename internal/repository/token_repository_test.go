package repository

import (
	"reflect"
	"testing"
)

func TestTokenRepository(t *testing.T) {
	repo := NewTokenRepository()

	if repo.Count() != 0 || len(repo.Tokens()) != 0 {
		t.Error("fresh repository should be empty")
	}

	repo.Register("tok-c", "android")
	repo.Register("tok-a", "ios")
	repo.Register("tok-b", "android")
	repo.Register("tok-a", "android") // refresh, not a duplicate

	if repo.Count() != 3 {
		t.Errorf("count = %d, want 3", repo.Count())
	}
	// Tokens come back sorted for deterministic fan-out.
	want := []string{"tok-a", "tok-b", "tok-c"}
	if got := repo.Tokens(); !reflect.DeepEqual(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}

	repo.Unregister("tok-b")
	repo.Unregister("never-registered")

	if repo.Count() != 2 {
		t.Errorf("count after unregister = %d, want 2", repo.Count())
	}
	want = []string{"tok-a", "tok-c"}
	if got := repo.Tokens(); !reflect.DeepEqual(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}
