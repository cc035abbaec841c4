// Package session tracks which account is currently active. The running
// instance holds at most one session, persisted as a single JSON value.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"pft/internal/accounts"
	"pft/internal/core"
	"pft/internal/kv"
)

// sessionKey holds the JSON-serialized active SessionAccount, or is absent.
const sessionKey = "pft:session"

type Manager struct {
	store     kv.Store
	directory *accounts.Directory
}

func NewManager(store kv.Store, directory *accounts.Directory) *Manager {
	return &Manager{store: store, directory: directory}
}

// SignIn authenticates against the account directory and persists the
// password-stripped session projection.
func (m *Manager) SignIn(ctx context.Context, email, password string) (core.SessionAccount, error) {
	account, err := m.directory.FindByCredentials(ctx, email, password)
	if err != nil {
		return core.SessionAccount{}, err
	}

	sess := account.Session()
	data, err := json.Marshal(sess)
	if err != nil {
		return core.SessionAccount{}, fmt.Errorf("marshal session: %w", err)
	}
	if err := m.store.Set(ctx, sessionKey, string(data)); err != nil {
		return core.SessionAccount{}, fmt.Errorf("persist session: %w", err)
	}

	slog.InfoContext(ctx, "Signed in",
		"account_id", sess.ID,
		"email", sess.Email,
		"component", "session",
		"operation", "sign_in")

	return sess, nil
}

// SignOut clears the active session. Signing out while signed out is a no-op.
func (m *Manager) SignOut(ctx context.Context) {
	if err := m.store.Delete(ctx, sessionKey); err != nil {
		slog.WarnContext(ctx, "Failed to clear session",
			"error", err, "component", "session", "operation", "sign_out")
	}
}

// Current returns the active session, if any. Absent or malformed session
// data reads as "no session", never as an error.
func (m *Manager) Current(ctx context.Context) (core.SessionAccount, bool) {
	raw, ok, err := m.store.Get(ctx, sessionKey)
	if err != nil || !ok {
		return core.SessionAccount{}, false
	}
	var sess core.SessionAccount
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		slog.WarnContext(ctx, "Malformed session data, treating as signed out",
			"error", err, "component", "session")
		return core.SessionAccount{}, false
	}
	if sess.Email == "" {
		return core.SessionAccount{}, false
	}
	return sess, true
}

// Require returns the active session or ErrUnauthenticated. It guards
// every ledger operation.
func (m *Manager) Require(ctx context.Context) (core.SessionAccount, error) {
	sess, ok := m.Current(ctx)
	if !ok {
		return core.SessionAccount{}, core.ErrUnauthenticated
	}
	return sess, nil
}
