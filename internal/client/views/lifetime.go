// Package views содержит модели экранов клиента: список учеников, форму
// ученика и dashboard. Модели не знают о способе отображения и используются
// командами CLI.
package views

import (
	"context"
	"errors"
)

// ErrViewClosed экран закрыт, результат запроса отброшен
var ErrViewClosed = errors.New("view closed")

// lifetime привязывает запросы к времени жизни экрана.
// После Close все запросы в полете отменяются, а их результаты не применяются.
type lifetime struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func newLifetime(parent context.Context) lifetime {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return lifetime{ctx: ctx, cancel: cancel}
}

// Close закрывает экран и отменяет запросы в полете. Повторный вызов безопасен.
func (l lifetime) Close() {
	l.cancel()
}

// Closed сообщает, закрыт ли экран
func (l lifetime) Closed() bool {
	return l.ctx.Err() != nil
}

// begin возвращает контекст запроса, который отменяется и вызывающим,
// и закрытием экрана
func (l lifetime) begin(ctx context.Context) (context.Context, func(), error) {
	if l.Closed() {
		return nil, nil, ErrViewClosed
	}
	reqCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(l.ctx, cancel)
	return reqCtx, func() {
		stop()
		cancel()
	}, nil
}

// finish проверяет, можно ли применить результат запроса
func (l lifetime) finish(err error) error {
	if l.Closed() {
		return ErrViewClosed
	}
	return err
}
