package token

import (
	"testing"
	"time"
)

func newTestStore() *Store {
	return NewStore("test-secret", time.Hour)
}

func TestIssueAndAuthenticate(t *testing.T) {
	store := newTestStore()

	tok, err := store.Issue(7)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	userID, err := store.Authenticate(tok)
	if err != nil {
		t.Fatalf("Authenticate() unexpected error: %v", err)
	}
	if userID != 7 {
		t.Errorf("Authenticate() userID = %d, want 7", userID)
	}
}

func TestAuthenticateEmptyToken(t *testing.T) {
	store := newTestStore()

	if _, err := store.Authenticate(""); err != ErrUnauthenticated {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthenticateUnknownToken(t *testing.T) {
	store := newTestStore()

	if _, err := store.Authenticate("garbage"); err != ErrUnauthenticated {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestIssueReplacesPriorToken(t *testing.T) {
	store := newTestStore()

	first, err := store.Issue(7)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	second, err := store.Issue(7)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	if first == second {
		t.Fatal("Issue() returned identical tokens for consecutive calls")
	}

	if _, err := store.Authenticate(first); err != ErrUnauthenticated {
		t.Errorf("superseded token accepted, err = %v", err)
	}
	if _, err := store.Authenticate(second); err != nil {
		t.Errorf("current token rejected: %v", err)
	}
}

func TestAuthenticateValidSignatureWithoutMapping(t *testing.T) {
	issuing := newTestStore()
	verifying := newTestStore() // same secret, empty table

	tok, err := issuing.Issue(7)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	if _, err := verifying.Authenticate(tok); err != ErrUnauthenticated {
		t.Errorf("token without a store mapping accepted, err = %v", err)
	}
}
