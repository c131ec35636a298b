package http

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
)

const (
	// Standard HTTP content types.
	contentTypeJSON = "application/json"
)

// Adapter is an HTTP client adapter using resty with an ordered middleware chain.
type Adapter struct {
	client  *resty.Client
	baseURL string
	logger  *slog.Logger

	mu         sync.RWMutex
	decorators []domain.RequestDecorator
	inspectors []domain.ResponseInspector
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify(skip bool) Option {
	return func(a *Adapter) {
		if skip {
			a.client.SetTLSClientConfig(&tls.Config{
				InsecureSkipVerify: true, //nolint:gosec // User-configurable for self-signed certificates
			})
		}
	}
}

// WithDecorators registers decorators at construction time.
func WithDecorators(decorators ...domain.RequestDecorator) Option {
	return func(a *Adapter) {
		a.decorators = append(a.decorators, decorators...)
	}
}

// NewAdapter creates a new HTTP adapter rooted at baseURL.
// Requests are never retried.
func NewAdapter(baseURL string, timeout time.Duration, logger *slog.Logger, opts ...Option) *Adapter {
	baseURL = strings.TrimRight(baseURL, "/")
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		logger.DebugContext(req.Context(), "HTTP request",
			"method", req.Method,
			"url", req.URL,
		)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.DebugContext(resp.Request.Context(), "HTTP response",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
		)
		return nil
	})

	a := &Adapter{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// BaseURL returns the root every request path is resolved against.
func (a *Adapter) BaseURL() string {
	return a.baseURL
}

// Use appends request decorators. They run in registration order.
func (a *Adapter) Use(decorators ...domain.RequestDecorator) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.decorators = append(a.decorators, decorators...)
}

// Inspect appends response inspectors. They run in registration order
// for every response regardless of status.
func (a *Adapter) Inspect(inspectors ...domain.ResponseInspector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inspectors = append(a.inspectors, inspectors...)
}

func (a *Adapter) chain() ([]domain.RequestDecorator, []domain.ResponseInspector) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]domain.RequestDecorator(nil), a.decorators...),
		append([]domain.ResponseInspector(nil), a.inspectors...)
}

// Do sends req and reads the whole response. A non-2xx status is not an
// error at this level; only a failure to obtain a response is.
func (a *Adapter) Do(ctx context.Context, req domain.HTTPRequest) (*domain.HTTPResponse, error) {
	decorators, inspectors := a.chain()
	target := a.baseURL + req.Path

	request := a.client.R().SetContext(ctx)
	for _, decorate := range decorators {
		if err := decorate(ctx, request.Header); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, apperrors.NewNetworkError(req.Method, target, err)
			}
			return nil, fmt.Errorf("failed to prepare %s %s: %w", req.Method, req.Path, err)
		}
	}

	if len(req.Query) > 0 {
		request.SetQueryParamsFromValues(req.Query)
	}
	if req.Token != "" {
		request.SetAuthToken(req.Token)
	}
	if req.Body != nil {
		request.SetHeader("Content-Type", contentTypeJSON).SetBody(req.Body)
	}

	resp, err := request.Execute(req.Method, req.Path)
	if err != nil {
		return nil, apperrors.NewNetworkError(req.Method, target, err)
	}

	if resp.Request != nil && resp.Request.URL != "" {
		target = resp.Request.URL
	}
	result := &domain.HTTPResponse{
		Method:     req.Method,
		URL:        target,
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}

	for _, inspect := range inspectors {
		if err := inspect(ctx, result); err != nil {
			return result, fmt.Errorf("response inspector failed for %s %s: %w", req.Method, req.Path, err)
		}
	}

	return result, nil
}
