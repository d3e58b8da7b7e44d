package api

import (
	"context"
	"fmt"

	"github.com/iudanet/studentdesk/pkg/api"
)

// SignIn выполняет вход по email и паролю.
// Сохраненный токен, если он есть, отправляется как обычно, но 401 здесь
// означает неверные учетные данные и не запускает глобальную очистку сессии.
func (c *Client) SignIn(ctx context.Context, req api.SignInRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(withoutExpiryHandling(ctx), "POST", "/signin", nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("signin request failed: %w", err)
	}
	return &resp, nil
}

// SignUp регистрирует нового пользователя
func (c *Client) SignUp(ctx context.Context, req api.SignUpRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(withoutExpiryHandling(ctx), "POST", "/signup", nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("signup request failed: %w", err)
	}
	return &resp, nil
}
