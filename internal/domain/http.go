package domain

import (
	"context"
	"net/http"
	"net/url"
)

// HTTPRequest describes a single call to the remote service.
// Path is relative to the adapter's base URL.
type HTTPRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	// Token, when set, is sent as a bearer credential regardless of the pipeline.
	Token string
}

// HTTPResponse is a fully read response.
type HTTPResponse struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

// IsSuccess reports whether the status code is 2xx.
func (r *HTTPResponse) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// RequestDecorator mutates outgoing headers before transmission.
type RequestDecorator func(ctx context.Context, header http.Header) error

// ResponseInspector observes every received response, whatever its status.
type ResponseInspector func(ctx context.Context, resp *HTTPResponse) error

// HTTPAdapter defines the interface for HTTP operations.
type HTTPAdapter interface {
	Do(ctx context.Context, req HTTPRequest) (*HTTPResponse, error)
}

// HTTPPipeline is an HTTPAdapter with an ordered middleware chain.
type HTTPPipeline interface {
	HTTPAdapter

	Use(decorators ...RequestDecorator)
	Inspect(inspectors ...ResponseInspector)
}
