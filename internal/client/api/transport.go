package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/studentdesk/internal/client/storage"
)

type contextKey int

const skipExpiryKey contextKey = iota

// withoutExpiryHandling помечает запрос, для которого 401 означает отказ в
// учетных данных, а не истекшую сессию (signin, signup)
func withoutExpiryHandling(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipExpiryKey, true)
}

func expiryHandlingDisabled(ctx context.Context) bool {
	skip, _ := ctx.Value(skipExpiryKey).(bool)
	return skip
}

// sessionTransport единственная точка, где запросы дополняются токеном
// и где обрабатывается 401
type sessionTransport struct {
	base    http.RoundTripper
	session storage.SessionStorage
	logger  *slog.Logger
	host    string // токен отправляется только на хост backend

	mu             sync.RWMutex
	onUnauthorized func()
}

// RoundTrip implements http.RoundTripper
func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	token, err := t.session.LoadToken(ctx)
	if err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
		return nil, &sessionError{err: err}
	}

	// RoundTripper не должен менять исходный запрос
	out := req.Clone(ctx)
	out.Header.Del("Authorization")
	if token != "" && out.URL.Host == t.host {
		out.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !expiryHandlingDisabled(ctx) {
		t.expire(ctx)
	}

	return resp, nil
}

// expire очищает сессию и переводит пользователя на вход.
// Вызывается ровно один раз на каждый ответ 401.
func (t *sessionTransport) expire(ctx context.Context) {
	// Ошибка отмены контекста не должна помешать очистке токена
	if err := t.session.ClearToken(context.WithoutCancel(ctx)); err != nil {
		t.logger.Error("failed to clear session after 401", "error", err)
	}

	t.mu.RLock()
	handler := t.onUnauthorized
	t.mu.RUnlock()

	t.logger.Warn("session expired, redirecting to login")
	if handler != nil {
		handler()
	}
}

func (t *sessionTransport) setUnauthorizedHandler(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onUnauthorized = fn
}

// loggingTransport логирует исходящие запросы: метод, путь, статус, длительность.
// НЕ логирует заголовки и тела (токены, пароли).
type loggingTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

// RoundTrip implements http.RoundTripper
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.base.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.logger.Warn("HTTP request failed",
			"method", req.Method,
			"path", sanitizePath(req.URL.Path),
			"request_id", req.Header.Get(requestIDHeader),
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	// Определяем уровень логирования на основе статуса
	logLevel := slog.LevelDebug
	if resp.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if resp.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}

	t.logger.Log(req.Context(), logLevel, "HTTP request",
		"method", req.Method,
		"path", sanitizePath(req.URL.Path),
		"request_id", req.Header.Get(requestIDHeader),
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)

	return resp, nil
}

// sanitizePath заменяет идентификаторы записей в пути на ":id",
// чтобы логи группировались по маршруту
// Например: /api/students/42 -> /api/students/:id, /api/students/search остается
func sanitizePath(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if i > 0 && parts[i-1] == "students" && part != "" && part != "search" && part != "batch" {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}
