// Package auth управляет сессией пользователя на клиенте: вход, регистрация,
// выход и восстановление сессии при запуске.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/iudanet/studentdesk/internal/client/api"
	"github.com/iudanet/studentdesk/internal/client/storage"
	"github.com/iudanet/studentdesk/internal/models"
	"github.com/iudanet/studentdesk/internal/validation"
	pkgapi "github.com/iudanet/studentdesk/pkg/api"
)

// State состояние контроллера авторизации
type State int

const (
	// StateUnauthenticated пользователь не вошел (начальное состояние)
	StateUnauthenticated State = iota
	// StateLoading идет восстановление сессии при запуске
	StateLoading
	// StateAuthenticated пользователь вошел
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Controller хранит текущего пользователя и управляет токеном в хранилище.
// Состояние и пользователь защищены одним мьютексом, поэтому
// IsAuthenticated всегда согласован со State.
type Controller struct {
	api     api.AuthAPI
	session storage.SessionStorage
	logger  *slog.Logger
	user    *models.User

	mu    sync.RWMutex
	state State
}

// NewController создает контроллер в состоянии StateUnauthenticated
func NewController(authAPI api.AuthAPI, session storage.SessionStorage, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		api:     authAPI,
		session: session,
		logger:  logger,
		state:   StateUnauthenticated,
	}
}

// Start восстанавливает сессию из хранилища.
// Сохраненному токену доверяем без запроса к серверу: у backend нет
// эндпоинта проверки, просроченный токен обнаружится по первому 401.
func (c *Controller) Start(ctx context.Context) error {
	c.setState(StateLoading, nil)

	token, err := c.session.LoadToken(ctx)
	if err != nil {
		c.setState(StateUnauthenticated, nil)
		if errors.Is(err, storage.ErrTokenNotFound) {
			return nil
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if token == "" {
		c.setState(StateUnauthenticated, nil)
		return nil
	}

	user := projectUser(token, models.User{
		ID:    placeholderRestoredID,
		Email: placeholderRestoredEmail,
		Name:  placeholderRestoredName,
		Role:  models.DefaultRole,
	})
	c.setState(StateAuthenticated, user)

	c.logger.Debug("session restored", "email", user.Email)
	return nil
}

// Login выполняет вход по email и паролю и сохраняет полученный токен.
// Ошибки ввода возвращаются как *validation.ValidationError до запроса к серверу,
// все остальные отказы оборачивают ErrAuthentication.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	resp, err := c.api.SignIn(ctx, pkgapi.SignInRequest{Email: email, Password: password})
	if err != nil {
		c.logger.Warn("login failed", "email", email, "error", err)
		return fmt.Errorf("%w: login failed: %w", ErrAuthentication, err)
	}

	token := resp.Data.Token
	if token == "" {
		return fmt.Errorf("%w: login failed: server returned no token", ErrAuthentication)
	}

	if err := c.session.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("%w: failed to save session: %w", ErrAuthentication, err)
	}

	user := projectUser(token, models.User{
		ID:    placeholderLoginID,
		Email: email,
		Name:  placeholderLoginName,
		Role:  models.DefaultRole,
	})
	c.setState(StateAuthenticated, user)

	c.logger.Info("logged in", "email", user.Email)
	return nil
}

// Register создает учетную запись и сразу выполняет вход.
// Пустая роль заменяется на models.DefaultRole.
func (c *Controller) Register(ctx context.Context, name, email, password, role string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validation.ValidateName(name); err != nil {
		return err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}
	if role = strings.TrimSpace(role); role == "" {
		role = models.DefaultRole
	}

	resp, err := c.api.SignUp(ctx, pkgapi.SignUpRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		c.logger.Warn("registration failed", "email", email, "error", err)
		return fmt.Errorf("%w: registration failed: %w", ErrAuthentication, err)
	}

	token := resp.Data.Token
	if token == "" {
		return fmt.Errorf("%w: registration failed: server returned no token", ErrAuthentication)
	}

	if err := c.session.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("%w: failed to save session: %w", ErrAuthentication, err)
	}

	user := projectUser(token, models.User{
		ID:   placeholderRegisterID,
		Role: role,
	})
	// Введенные при регистрации данные важнее claims
	user.Name = name
	user.Email = email
	c.setState(StateAuthenticated, user)

	c.logger.Info("registered", "email", email, "role", role)
	return nil
}

// Logout удаляет токен и пользователя. Запрос к серверу не выполняется.
func (c *Controller) Logout(ctx context.Context) error {
	err := c.session.ClearToken(ctx)
	c.setState(StateUnauthenticated, nil)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Expire сбрасывает пользователя после 401. Токен к этому моменту уже
// удален API клиентом, поэтому хранилище здесь не трогаем.
func (c *Controller) Expire() {
	c.setState(StateUnauthenticated, nil)
	c.logger.Debug("session expired")
}

// State возвращает текущее состояние
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// User возвращает копию текущего пользователя или nil
func (c *Controller) User() *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// IsAuthenticated сообщает, установлен ли текущий пользователь
func (c *Controller) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil
}

func (c *Controller) setState(state State, user *models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
	c.user = user
}
