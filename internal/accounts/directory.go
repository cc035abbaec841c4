// Package accounts manages the set of registered accounts and credential
// checks. The whole account set is persisted as one JSON array under a
// single store key and rewritten on every registration.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"pft/internal/core"
	"pft/internal/kv"
)

// accountsKey holds the JSON-serialized array of all accounts.
const accountsKey = "pft:accounts"

type Directory struct {
	store kv.Store
}

func NewDirectory(store kv.Store) *Directory {
	return &Directory{store: store}
}

// Register validates the input, enforces case-insensitive email uniqueness
// and persists the new account immediately. The returned Account carries
// the password so the caller can authenticate straight away; it is never
// re-exposed elsewhere.
func (d *Directory) Register(ctx context.Context, fullName, email, password, confirmPassword string) (core.Account, error) {
	fullName = strings.TrimSpace(fullName)
	normalized := core.NormalizeEmail(email)

	if fullName == "" || normalized == "" || password == "" || confirmPassword == "" {
		return core.Account{}, fmt.Errorf("%w: all fields are required", core.ErrValidation)
	}
	if password != confirmPassword {
		return core.Account{}, fmt.Errorf("%w: passwords do not match", core.ErrValidation)
	}

	all := d.load(ctx)
	for _, a := range all {
		if a.Email == normalized {
			return core.Account{}, fmt.Errorf("%w: %s", core.ErrDuplicateAccount, normalized)
		}
	}

	account := core.Account{
		ID:        uuid.NewString(),
		FullName:  fullName,
		Email:     normalized,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
	all = append(all, account)
	if err := d.save(ctx, all); err != nil {
		return core.Account{}, fmt.Errorf("persist accounts: %w", err)
	}

	slog.InfoContext(ctx, "Account registered",
		"account_id", account.ID,
		"email", account.Email,
		"component", "accounts",
		"operation", "register")

	return account, nil
}

// FindByCredentials looks up an account by normalized email and verifies
// the password.
func (d *Directory) FindByCredentials(ctx context.Context, email, password string) (core.Account, error) {
	normalized := core.NormalizeEmail(email)
	if normalized == "" || password == "" {
		return core.Account{}, fmt.Errorf("%w: email and password are required", core.ErrValidation)
	}

	for _, a := range d.load(ctx) {
		if a.Email != normalized {
			continue
		}
		if a.Password != password {
			return core.Account{}, core.ErrInvalidCredentials
		}
		return a, nil
	}
	return core.Account{}, fmt.Errorf("%w: no account for %s", core.ErrNotFound, normalized)
}

// Exists reports whether an account with the email is registered,
// case-insensitively.
func (d *Directory) Exists(ctx context.Context, email string) bool {
	normalized := core.NormalizeEmail(email)
	for _, a := range d.load(ctx) {
		if a.Email == normalized {
			return true
		}
	}
	return false
}

// Count returns the number of registered accounts.
func (d *Directory) Count(ctx context.Context) int {
	return len(d.load(ctx))
}

// load reads the full account set. Absent or corrupt data degrades to an
// empty set, never an error.
func (d *Directory) load(ctx context.Context) []core.Account {
	raw, ok, err := d.store.Get(ctx, accountsKey)
	if err != nil || !ok {
		if err != nil {
			slog.WarnContext(ctx, "Failed to read accounts, starting empty",
				"error", err, "component", "accounts")
		}
		return nil
	}
	var all []core.Account
	if err := json.Unmarshal([]byte(raw), &all); err != nil {
		slog.WarnContext(ctx, "Corrupt account data, starting empty",
			"error", err, "component", "accounts")
		return nil
	}
	return all
}

func (d *Directory) save(ctx context.Context, all []core.Account) error {
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("marshal accounts: %w", err)
	}
	return d.store.Set(ctx, accountsKey, string(data))
}
