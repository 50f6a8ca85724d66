// Package state persists the client's key–value blobs: auth token, profile
// snapshot, accounts map, question history, and language preference. Each
// key is read and written independently; callers must tolerate any subset
// being absent.
package state

import "context"

// Keys of the persisted state layout.
const (
	KeyToken    = "token"
	KeyProfile  = "profile"
	KeyAccounts = "accounts"
	KeyHistory  = "history"
	KeyLanguage = "language"
	KeySecret   = "secret"
)

// Repository is a plain key–value store over the local database.
type Repository interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set upserts the value for key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// List returns every stored key–value pair.
	List(ctx context.Context) (map[string][]byte, error)
}
