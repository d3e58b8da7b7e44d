package cli

import "errors"

// ErrNotAuthenticated команда требует входа
var ErrNotAuthenticated = errors.New("not authenticated. Please run 'studentdesk login' first")

// ErrUsage неверные аргументы команды
var ErrUsage = errors.New("invalid usage")

// CommandError ошибка команды с сообщением для пользователя
type CommandError struct {
	Err     error
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
