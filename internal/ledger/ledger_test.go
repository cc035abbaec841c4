package ledger

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"pft/internal/core"
	"pft/internal/kv/memory"
)

var testAcct = core.SessionAccount{ID: "u1", Email: "demo@example.com", FullName: "Demo User"}

func TestAddAndLoadNewestFirst(t *testing.T) {
	ctx := context.Background()
	l := New(memory.New())

	first, err := l.Add(ctx, testAcct, AddInput{Title: "Groceries", Amount: "72.45", Category: "Food", Date: "2025-11-20"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := l.Add(ctx, testAcct, AddInput{Title: "Bus Pass", Amount: "25.00", Category: "Transport", Date: "2025-11-21"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("expected unique expense ids")
	}

	got := l.Load(ctx, testAcct)
	if len(got) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(got))
	}
	if got[0].ID != second.ID || got[1].ID != first.ID {
		t.Fatal("expected newest-first ordering")
	}
	if got[0].Amount.Cents != 2500 || got[1].Amount.Cents != 7245 {
		t.Fatalf("amounts not preserved: %d, %d", got[0].Amount.Cents, got[1].Amount.Cents)
	}
}

func TestAddDefaultsCategory(t *testing.T) {
	ctx := context.Background()
	l := New(memory.New())

	e, err := l.Add(ctx, testAcct, AddInput{Title: "Misc", Amount: "3.00", Date: "2025-11-20"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.Category != core.DefaultCategory {
		t.Fatalf("expected default category, got %q", e.Category)
	}
}

func TestAddValidation(t *testing.T) {
	ctx := context.Background()
	l := New(memory.New())

	cases := []struct {
		name  string
		input AddInput
	}{
		{"empty title", AddInput{Title: " ", Amount: "1.00", Date: "2025-11-20"}},
		{"empty amount", AddInput{Title: "X", Amount: "", Date: "2025-11-20"}},
		{"zero amount", AddInput{Title: "X", Amount: "0", Date: "2025-11-20"}},
		{"negative amount", AddInput{Title: "X", Amount: "-5", Date: "2025-11-20"}},
		{"non-numeric amount", AddInput{Title: "X", Amount: "abc", Date: "2025-11-20"}},
		{"empty date", AddInput{Title: "X", Amount: "1.00", Date: ""}},
		{"bad date", AddInput{Title: "X", Amount: "1.00", Date: "20/11/2025"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := l.Add(ctx, testAcct, tc.input); !errors.Is(err, core.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
	if got := l.Load(ctx, testAcct); len(got) != 0 {
		t.Fatalf("rejected input must not persist, ledger has %d records", len(got))
	}
}

func TestRemoveRoundTrip(t *testing.T) {
	ctx := context.Background()
	l := New(memory.New())

	if _, err := l.Add(ctx, testAcct, AddInput{Title: "Keep", Amount: "10.00", Category: "Food", Date: "2025-11-20"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := l.Load(ctx, testAcct)

	added, err := l.Add(ctx, testAcct, AddInput{Title: "Temp", Amount: "5.00", Category: "Misc", Date: "2025-11-21"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := l.Remove(ctx, testAcct, added.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	after := l.Load(ctx, testAcct)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("add+remove did not restore prior state:\nbefore=%+v\nafter=%+v", before, after)
	}
}

func TestRemoveUnknownID(t *testing.T) {
	ctx := context.Background()
	l := New(memory.New())
	if err := l.Remove(ctx, testAcct, "nope"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCorruptLedgerDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	l := New(store)

	if err := store.Set(ctx, storageKey("demo@example.com"), "[{broken"); err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}
	if got := l.Load(ctx, testAcct); len(got) != 0 {
		t.Fatalf("corrupt data should load as empty, got %d records", len(got))
	}
}

func TestLedgersAreScopedPerAccount(t *testing.T) {
	ctx := context.Background()
	l := New(memory.New())
	other := core.SessionAccount{ID: "u2", Email: "other@example.com"}

	if _, err := l.Add(ctx, testAcct, AddInput{Title: "Mine", Amount: "1.00", Date: "2025-11-20"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := l.Load(ctx, other); len(got) != 0 {
		t.Fatalf("other account must have an empty ledger, got %d records", len(got))
	}
}

func TestStorageKeyInjective(t *testing.T) {
	// Emails that collide under punctuation-substitution schemes
	// ("a@b.com" and "a.b_com" both become "a_b_com") must map to
	// distinct keys here.
	pairs := [][2]string{
		{"a@b.com", "a.b_com"},
		{"a@b.com", "a_b.com"},
		{"x.y@z.com", "x@y.z@com"},
	}
	for _, p := range pairs {
		if storageKey(p[0]) == storageKey(p[1]) {
			t.Fatalf("keys collide for %q and %q", p[0], p[1])
		}
	}

	// And the mapping is deterministic.
	if storageKey("demo@example.com") != storageKey("demo@example.com") {
		t.Fatal("expected deterministic key derivation")
	}
}
