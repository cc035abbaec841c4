package seed

import (
	"context"
	"testing"

	"pft/internal/accounts"
	"pft/internal/kv/memory"
	"pft/internal/ledger"
	"pft/internal/report"
)

func TestDemoIfEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	dir := accounts.NewDirectory(store)
	led := ledger.New(store)

	if err := DemoIfEmpty(ctx, dir, led, 2025, 11); err != nil {
		t.Fatalf("seed: %v", err)
	}

	account, err := dir.FindByCredentials(ctx, DemoEmail, DemoPassword)
	if err != nil {
		t.Fatalf("demo credentials rejected: %v", err)
	}

	expenses := led.Load(ctx, account.Session())
	if len(expenses) != 3 {
		t.Fatalf("expected 3 seeded expenses, got %d", len(expenses))
	}
	if expenses[0].Title != "Groceries" || expenses[0].Category != "Food" {
		t.Fatalf("unexpected first record: %+v", expenses[0])
	}

	s := report.Summarize(expenses)
	if s.Total.Cents != 11295 || s.Average.Cents != 3765 {
		t.Fatalf("seeded totals wrong: total=%d average=%d", s.Total.Cents, s.Average.Cents)
	}
}

func TestDemoSkipsWhenAccountsExist(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	dir := accounts.NewDirectory(store)
	led := ledger.New(store)

	if _, err := dir.Register(ctx, "Real User", "real@example.com", "pw", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := DemoIfEmpty(ctx, dir, led, 2025, 11); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if dir.Exists(ctx, DemoEmail) {
		t.Fatal("seeding must not run over existing accounts")
	}
}

func TestDemoIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	dir := accounts.NewDirectory(store)
	led := ledger.New(store)

	for i := 0; i < 2; i++ {
		if err := DemoIfEmpty(ctx, dir, led, 2025, 11); err != nil {
			t.Fatalf("seed run %d: %v", i, err)
		}
	}
	if dir.Count(ctx) != 1 {
		t.Fatalf("expected 1 account, got %d", dir.Count(ctx))
	}
}
