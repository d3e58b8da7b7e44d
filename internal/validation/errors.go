package validation

import (
	"errors"
	"fmt"
)

// ErrValidation базовая ошибка для всех ошибок валидации ввода
var ErrValidation = errors.New("validation failed")

// ValidationError описывает первое найденное нарушение в пользовательском вводе.
// Message предназначено для показа пользователю как есть.
type ValidationError struct {
	Field   string // имя поля формы (name, email, age, grade, phone, password)
	Message string // сообщение для пользователя
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
