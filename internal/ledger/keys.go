package ledger

import "encoding/hex"

// expensePrefix namespaces per-account expense storage.
const expensePrefix = "pft:expenses:"

// storageKey derives the store key for an account's ledger from its
// normalized email. Hex encoding is a bijection on the email bytes, so
// two distinct emails can never map to the same key — unlike schemes
// that substitute punctuation, where "a@b.com" and "a_b.com" collide.
// The caller passes an already-normalized email.
func storageKey(normalizedEmail string) string {
	return expensePrefix + hex.EncodeToString([]byte(normalizedEmail))
}
