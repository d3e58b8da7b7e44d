package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/iudanet/studentdesk/pkg/api"
)

// Виды ошибок API клиента, проверяются через errors.Is
var (
	// ErrNetwork запрос не дошел до сервера или ответ не получен
	ErrNetwork = errors.New("network error")

	// ErrAuthorizationExpired сервер ответил 401 на авторизованный запрос.
	// К моменту возврата ошибки сессия уже очищена глобально.
	ErrAuthorizationExpired = errors.New("authorization expired")

	// ErrServer любой другой не-2xx ответ
	ErrServer = errors.New("server error")
)

// StatusError ответ сервера с не-2xx статусом
type StatusError struct {
	Message    string // message из тела ответа, если сервер его прислал
	Body       string // сырое тело ответа
	StatusCode int
	expired    bool // 401 на запросе, для которого работает глобальная обработка
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// Unwrap относит ошибку к ErrAuthorizationExpired или ErrServer
func (e *StatusError) Unwrap() error {
	if e.expired {
		return ErrAuthorizationExpired
	}
	return ErrServer
}

// newStatusError разбирает тело ошибки вида {"error": "...", "message": "..."}
func newStatusError(statusCode int, body []byte, expired bool) *StatusError {
	statusErr := &StatusError{
		StatusCode: statusCode,
		Body:       string(body),
		expired:    expired && statusCode == http.StatusUnauthorized,
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		statusErr.Message = errResp.Message
		if statusErr.Message == "" {
			statusErr.Message = errResp.Error
		}
	}

	return statusErr
}

// UserMessage возвращает текст для показа пользователю: сообщение сервера,
// если оно есть, иначе fallback
func UserMessage(err error, fallback string) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return fallback
}

// sessionError ошибка чтения хранилища сессии внутри transport
type sessionError struct {
	err error
}

func (e *sessionError) Error() string {
	return fmt.Sprintf("failed to load session token: %v", e.err)
}

func (e *sessionError) Unwrap() error {
	return e.err
}
