package store

import (
	"errors"
	"testing"
)

// failingStorage rejects every operation, standing in for a broken
// durable backend.
type failingStorage struct {
	loadErr error
	saveErr error
}

func (s *failingStorage) Load(string) ([]string, error) { return nil, s.loadErr }

func (s *failingStorage) Save(string, []string) error { return s.saveErr }

func TestWishlistToggleIsSelfInverse(t *testing.T) {
	wishlist := NewWishlistStore(NewMemoryStorage())

	if !wishlist.Toggle(testSession, "3") {
		t.Fatal("First toggle should add the ID")
	}
	if !wishlist.IsMember(testSession, "3") {
		t.Fatal("Expected membership after toggle")
	}

	if wishlist.Toggle(testSession, "3") {
		t.Fatal("Second toggle should remove the ID")
	}
	if wishlist.IsMember(testSession, "3") {
		t.Fatal("Expected no membership after double toggle")
	}
	if ids := wishlist.IDs(testSession); len(ids) != 0 {
		t.Fatalf("Expected empty wishlist, got %v", ids)
	}
}

func TestWishlistPreservesInsertionOrder(t *testing.T) {
	wishlist := NewWishlistStore(NewMemoryStorage())

	wishlist.Toggle(testSession, "2")
	wishlist.Toggle(testSession, "5")
	wishlist.Toggle(testSession, "1")

	ids := wishlist.IDs(testSession)
	want := []string{"2", "5", "1"}
	if len(ids) != len(want) {
		t.Fatalf("IDs = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("IDs = %v, want %v", ids, want)
		}
	}
}

func TestWishlistRehydratesFromStorage(t *testing.T) {
	storage := NewMemoryStorage()

	first := NewWishlistStore(storage)
	first.Toggle(testSession, "4")
	first.Toggle(testSession, "6")

	// A fresh store over the same backend sees the persisted set.
	second := NewWishlistStore(storage)
	if !second.IsMember(testSession, "4") || !second.IsMember(testSession, "6") {
		t.Fatalf("Rehydrated wishlist = %v, want [4 6]", second.IDs(testSession))
	}
}

func TestWishlistLoadFailureYieldsEmptySet(t *testing.T) {
	wishlist := NewWishlistStore(&failingStorage{
		loadErr: errors.New("corrupt value"),
	})

	if ids := wishlist.IDs(testSession); len(ids) != 0 {
		t.Fatalf("Expected empty set on load failure, got %v", ids)
	}
	if wishlist.IsMember(testSession, "1") {
		t.Error("No ID should be a member after a failed load")
	}
}

func TestWishlistSaveFailureDoesNotBlockToggle(t *testing.T) {
	wishlist := NewWishlistStore(&failingStorage{
		saveErr: errors.New("disk full"),
	})

	if !wishlist.Toggle(testSession, "3") {
		t.Fatal("Toggle should succeed in memory despite the save failure")
	}
	if !wishlist.IsMember(testSession, "3") {
		t.Fatal("Memory state is the source of truth for the session")
	}
}
