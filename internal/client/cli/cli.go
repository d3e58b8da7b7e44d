package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/iudanet/studentdesk/internal/client/api"
	"github.com/iudanet/studentdesk/internal/client/auth"
	"github.com/iudanet/studentdesk/internal/client/iocli"
	"github.com/iudanet/studentdesk/internal/client/views"
	"github.com/iudanet/studentdesk/internal/validation"
)

// PasswordEnv переменная окружения с паролем для неинтерактивного входа
const PasswordEnv = "STUDENTDESK_PASSWORD"

// Passwords источники пароля, заданные флагами
type Passwords struct {
	FromFile string
	FromArgs string
}

// Cli команды терминального клиента
type Cli struct {
	io        iocli.IO
	auth      *auth.Controller
	students  api.StudentsAPI
	logger    *slog.Logger
	passwords Passwords
}

// New создает CLI поверх контроллера авторизации и API учеников
func New(io iocli.IO, controller *auth.Controller, students api.StudentsAPI, logger *slog.Logger) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:       io,
		auth:     controller,
		students: students,
		logger:   logger,
	}
}

// SetPasswords задает источники пароля для login и register
func (c *Cli) SetPasswords(p Passwords) {
	c.passwords = p
}

// HandleUnauthorized вызывается API клиентом на 401: токен уже удален,
// сбрасываем пользователя и отправляем на вход
func (c *Cli) HandleUnauthorized() {
	c.auth.Expire()
	c.io.Println()
	c.io.Println("Session expired. Please run 'studentdesk login' to sign in again.")
}

// requireAuth проверяет, что пользователь вошел
func (c *Cli) requireAuth() error {
	if !c.auth.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// getPassword получает пароль из источников в порядке приоритета:
// 1. Переменная окружения STUDENTDESK_PASSWORD
// 2. Файл из --password-file
// 3. Параметр --password
// 4. Интерактивный ввод
func (c *Cli) getPassword(prompt string) (string, error) {
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	if c.passwords.FromFile != "" {
		content, err := os.ReadFile(c.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	if c.passwords.FromArgs != "" {
		return c.passwords.FromArgs, nil
	}

	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// fail превращает ошибку операции в сообщение для пользователя
func fail(err error, fallback string) error {
	var vErr *validation.ValidationError
	switch {
	case errors.As(err, &vErr):
		return &CommandError{Message: vErr.Message, Err: err}
	case errors.Is(err, api.ErrAuthorizationExpired):
		return &CommandError{Message: "session expired", Err: err}
	case errors.Is(err, views.ErrViewClosed):
		return &CommandError{Message: "cancelled", Err: err}
	case errors.Is(err, api.ErrNetwork):
		return &CommandError{Message: fallback + ": server is unreachable", Err: err}
	default:
		return &CommandError{Message: api.UserMessage(err, fallback), Err: err}
	}
}
