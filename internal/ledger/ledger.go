// Package ledger persists each account's ordered expense sequence.
// Records are kept newest-first: the most recently added expense is the
// first element, and the whole sequence is rewritten on every mutation.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"pft/internal/core"
	"pft/internal/kv"
)

type Ledger struct {
	store kv.Store
}

func New(store kv.Store) *Ledger {
	return &Ledger{store: store}
}

// AddInput carries the raw field values for a new expense. Amount is the
// decimal string as entered; it is parsed and rounded to cents here.
type AddInput struct {
	Title    string
	Amount   string
	Category string
	Date     string
}

// Load returns the account's expenses, newest first. Absent or corrupt
// data degrades to an empty ledger, never an error.
func (l *Ledger) Load(ctx context.Context, acct core.SessionAccount) []core.Expense {
	key := storageKey(core.NormalizeEmail(acct.Email))
	raw, ok, err := l.store.Get(ctx, key)
	if err != nil || !ok {
		if err != nil {
			slog.WarnContext(ctx, "Failed to read ledger, starting empty",
				"error", err, "email", acct.Email, "component", "ledger")
		}
		return nil
	}
	var expenses []core.Expense
	if err := json.Unmarshal([]byte(raw), &expenses); err != nil {
		slog.WarnContext(ctx, "Corrupt ledger data, starting empty",
			"error", err, "email", acct.Email, "component", "ledger")
		return nil
	}
	return expenses
}

// Add validates the input, constructs the expense and inserts it at the
// front of the account's ledger and persists the full sequence.
func (l *Ledger) Add(ctx context.Context, acct core.SessionAccount, input AddInput) (core.Expense, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return core.Expense{}, fmt.Errorf("%w: %s", core.ErrValidation, core.ErrEmptyTitle)
	}

	cents, err := core.ParseDecimalToCents(input.Amount)
	if err != nil {
		return core.Expense{}, fmt.Errorf("%w: %s", core.ErrValidation, core.ErrInvalidAmount)
	}

	date, err := core.ParseDate(input.Date)
	if err != nil {
		return core.Expense{}, fmt.Errorf("%w: %s", core.ErrValidation, core.ErrInvalidDate)
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = core.DefaultCategory
	}

	expense := core.Expense{
		ID:       uuid.NewString(),
		Title:    title,
		Amount:   core.Money{Cents: cents},
		Category: category,
		Date:     date,
	}

	expenses := append([]core.Expense{expense}, l.Load(ctx, acct)...)
	if err := l.save(ctx, acct, expenses); err != nil {
		return core.Expense{}, fmt.Errorf("persist ledger: %w", err)
	}

	slog.InfoContext(ctx, "Expense recorded",
		"expense_id", expense.ID,
		"title", expense.Title,
		"amount_cents", expense.Amount.Cents,
		"category", expense.Category,
		"component", "ledger",
		"operation", "add")

	return expense, nil
}

// Remove deletes the expense with the given id and persists the remainder.
func (l *Ledger) Remove(ctx context.Context, acct core.SessionAccount, id string) error {
	expenses := l.Load(ctx, acct)
	idx := -1
	for i, e := range expenses {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: expense %s", core.ErrNotFound, id)
	}

	expenses = append(expenses[:idx], expenses[idx+1:]...)
	if err := l.save(ctx, acct, expenses); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}

	slog.InfoContext(ctx, "Expense removed",
		"expense_id", id,
		"component", "ledger",
		"operation", "remove")

	return nil
}

func (l *Ledger) save(ctx context.Context, acct core.SessionAccount, expenses []core.Expense) error {
	if expenses == nil {
		expenses = []core.Expense{}
	}
	data, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	return l.store.Set(ctx, storageKey(core.NormalizeEmail(acct.Email)), string(data))
}
