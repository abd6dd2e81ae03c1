// Package sessionrepo persists the client session record in the local
// sqlite database as string-keyed values. The session store is the only
// writer; everything else reads through it.
package sessionrepo

import "context"

// Well-known keys. Absence of a record means the client is unauthenticated.
const (
	KeyUser  = "user"
	KeyToken = "token"
)

// Repository is key/value persistence for session data. Get returns nil
// (no error) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
