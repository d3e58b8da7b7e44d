package storage

import (
	"context"
)

// SessionStorage defines interface for storing the bearer token on client.
// Хранит ровно один токен под фиксированным ключом, формат токена не проверяется.
type SessionStorage interface {
	// SaveToken stores token, replacing any previous one
	SaveToken(ctx context.Context, token string) error

	// LoadToken returns stored token
	// Returns ErrTokenNotFound if no token exists. Does not modify storage.
	LoadToken(ctx context.Context) (string, error)

	// ClearToken removes stored token (logout, expired session)
	// Clearing an empty storage is not an error.
	ClearToken(ctx context.Context) error
}
