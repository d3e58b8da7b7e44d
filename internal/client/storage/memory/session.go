// Package memory provides non-durable client storage.
// Используется для эфемерных сессий (--db "") и в тестах, где нужно
// несколько независимых сессий одновременно.
package memory

import (
	"context"
	"sync"

	"github.com/iudanet/studentdesk/internal/client/storage"
)

// Session хранит токен в памяти процесса
type Session struct {
	mu    sync.RWMutex
	token string
	set   bool
}

var _ storage.SessionStorage = (*Session)(nil)

// NewSession создает пустое хранилище сессии
func NewSession() *Session {
	return &Session{}
}

// SaveToken stores the session token
func (s *Session) SaveToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.set = true
	return nil
}

// LoadToken returns the stored token or storage.ErrTokenNotFound
func (s *Session) LoadToken(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return "", storage.ErrTokenNotFound
	}
	return s.token, nil
}

// ClearToken removes the stored token
func (s *Session) ClearToken(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.set = false
	return nil
}
