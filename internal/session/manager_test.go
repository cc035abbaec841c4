package session

import (
	"context"
	"errors"
	"testing"

	"pft/internal/accounts"
	"pft/internal/core"
	"pft/internal/kv/memory"
)

func newTestManager(t *testing.T) (*Manager, *memory.Store) {
	t.Helper()
	store := memory.New()
	dir := accounts.NewDirectory(store)
	if _, err := dir.Register(context.Background(), "Demo User", "demo@example.com", "demo123", "demo123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	return NewManager(store, dir), store
}

func TestSignInSignOut(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	if _, ok := m.Current(ctx); ok {
		t.Fatal("expected no session before sign-in")
	}

	sess, err := m.SignIn(ctx, "Demo@Example.com", "demo123")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if sess.Email != "demo@example.com" || sess.FullName != "Demo User" {
		t.Fatalf("unexpected session: %+v", sess)
	}

	got, ok := m.Current(ctx)
	if !ok || got != sess {
		t.Fatalf("current session mismatch: %+v ok=%v", got, ok)
	}

	m.SignOut(ctx)
	if _, ok := m.Current(ctx); ok {
		t.Fatal("expected session cleared")
	}
	// Idempotent
	m.SignOut(ctx)
}

func TestSignInFailures(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	if _, err := m.SignIn(ctx, "demo@example.com", "wrong"); !errors.Is(err, core.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := m.SignIn(ctx, "nobody@example.com", "demo123"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, ok := m.Current(ctx); ok {
		t.Fatal("failed sign-in must not create a session")
	}
}

func TestRequire(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	if _, err := m.Require(ctx); !errors.Is(err, core.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := m.SignIn(ctx, "demo@example.com", "demo123"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	sess, err := m.Require(ctx)
	if err != nil || sess.Email != "demo@example.com" {
		t.Fatalf("require after sign-in: %+v, %v", sess, err)
	}
}

func TestMalformedSessionReadsAsSignedOut(t *testing.T) {
	ctx := context.Background()
	m, store := newTestManager(t)

	if err := store.Set(ctx, "pft:session", "{broken"); err != nil {
		t.Fatalf("seed corrupt session: %v", err)
	}
	if _, ok := m.Current(ctx); ok {
		t.Fatal("malformed session must read as signed out")
	}
	if _, err := m.Require(ctx); !errors.Is(err, core.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
