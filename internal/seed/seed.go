// Package seed populates a demo account with sample expenses so a fresh
// install has something to show.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"pft/internal/accounts"
	"pft/internal/core"
	"pft/internal/ledger"
)

const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo123"
	demoFullName = "Demo User"
)

// DemoIfEmpty registers the demo account with three sample expenses dated
// in the given reference month. It does nothing when any account already
// exists, so it never overwrites real data.
func DemoIfEmpty(ctx context.Context, dir *accounts.Directory, led *ledger.Ledger, year, month int) error {
	if dir.Count(ctx) > 0 {
		return nil
	}

	account, err := dir.Register(ctx, demoFullName, DemoEmail, DemoPassword, DemoPassword)
	if err != nil {
		return fmt.Errorf("register demo account: %w", err)
	}

	date := core.NewDate(year, month, 20).String()
	samples := []ledger.AddInput{
		{Title: "Groceries", Amount: "72.45", Category: "Food", Date: date},
		{Title: "Bus Pass", Amount: "25.00", Category: "Transport", Date: date},
		{Title: "Movie Night", Amount: "15.50", Category: "Entertainment", Date: date},
	}

	// Add in reverse so the first sample ends up at the front of the
	// newest-first ledger.
	sess := account.Session()
	for i := len(samples) - 1; i >= 0; i-- {
		if _, err := led.Add(ctx, sess, samples[i]); err != nil {
			return fmt.Errorf("seed expense %q: %w", samples[i].Title, err)
		}
	}

	slog.InfoContext(ctx, "Seeded demo account",
		"email", DemoEmail,
		"expenses", len(samples),
		"component", "seed",
		"operation", "seed")

	return nil
}
