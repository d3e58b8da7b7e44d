package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/iudanet/studentdesk/internal/client/storage"
)

const (
	// DefaultBaseURL адрес backend по умолчанию (host:port + префикс /api)
	DefaultBaseURL = "http://localhost:3001/api"

	// DefaultTimeout таймаут одного HTTP запроса
	DefaultTimeout = 30 * time.Second

	requestIDHeader = "X-Request-ID"
	maxRedirects    = 10
)

// Client представляет HTTP клиент для взаимодействия с backend.
// Все запросы проходят через sessionTransport: токен из хранилища
// добавляется как bearer, ответ 401 очищает сессию.
type Client struct {
	httpClient *http.Client
	session    *sessionTransport
	logger     *slog.Logger
	baseURL    string
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// Option настраивает Client при создании
type Option func(*options)

type options struct {
	base           http.RoundTripper
	logger         *slog.Logger
	limiter        *rate.Limiter
	onUnauthorized func()
	timeout        time.Duration
}

// WithTimeout задает таймаут одного запроса
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithLogger задает логгер для HTTP запросов
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTransport подменяет базовый транспорт (используется в тестах)
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) {
		o.base = rt
	}
}

// WithUnauthorizedHandler задает действие при 401: переход на экран входа
func WithUnauthorizedHandler(fn func()) Option {
	return func(o *options) {
		o.onUnauthorized = fn
	}
}

// NewClient создает новый API клиент.
// session читается перед каждым запросом и очищается при 401.
func NewClient(baseURL string, session storage.SessionStorage, opts ...Option) (*Client, error) {
	o := options{
		base:    http.DefaultTransport,
		logger:  slog.Default(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	baseURL = strings.TrimRight(baseURL, "/")
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", baseURL)
	}

	var next http.RoundTripper = &loggingTransport{base: o.base, logger: o.logger}
	if o.limiter != nil {
		next = &rateLimitTransport{base: next, limiter: o.limiter}
	}

	st := &sessionTransport{
		base:           next,
		session:        session,
		logger:         o.logger,
		host:           parsed.Host,
		onUnauthorized: o.onUnauthorized,
	}

	return &Client{
		baseURL: baseURL,
		session: st,
		logger:  o.logger,
		httpClient: &http.Client{
			Timeout:   o.timeout,
			Transport: st,
			// Ограничиваем количество редиректов, токен добавит transport
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}, nil
}

// BaseURL возвращает адрес backend
func (c *Client) BaseURL() string {
	return c.baseURL
}

// OnUnauthorized заменяет обработчик 401.
// Нужен, когда обработчик зависит от объектов, созданных после клиента.
func (c *Client) OnUnauthorized(fn func()) {
	c.session.setUnauthorizedHandler(fn)
}

// doRequest выполняет HTTP запрос и декодирует JSON ответ в result
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, result any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var sessErr *sessionError
		if errors.As(err, &sessErr) {
			return sessErr
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("request cancelled: %w", ctxErr)
		}
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", ErrNetwork, err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp.StatusCode, respBody, !expiryHandlingDisabled(ctx))
	}

	// Декодируем успешный ответ, пустое тело допустимо (DELETE, 204)
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
