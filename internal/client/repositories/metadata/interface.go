// Package metadata is the client's persistent local store: a flat key/value
// table holding session artifacts (auth token, last user id). Sign-out wipes
// it with Clear.
package metadata

import (
	"context"
)

// Well-known keys.
const (
	KeyAuthToken = "auth_token"
	KeyUserID    = "user_id"
	KeyUsername  = "username"
)

type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany upserts all pairs atomically.
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
