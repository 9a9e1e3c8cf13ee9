// Package http wraps the HTTP transport used by the Helix client. It is a
// thin layer over hashicorp/go-retryablehttp: it joins the base URL with a
// prebuilt path+query, applies headers and interceptors, and reads the
// response into a helix.Response. Retries are disabled unless explicitly
// configured; the query pipeline above this layer never retries.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/streamkit-io/helix/internal/constants"
	"github.com/streamkit-io/helix/pkg/helix"
)

// Request represents an HTTP request to be dispatched.
type Request struct {
	Method string
	// Path is the path plus raw query, relative to the base URL. It is
	// passed through verbatim: query values are sent exactly as built.
	Path    string
	Headers map[string]string
	// Body, when non-nil, is JSON-marshaled.
	Body any
}

// Client dispatches requests against a fixed base URL.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	userAgent    string
	logger       helix.Logger
	debug        bool
	interceptors *helix.InterceptorChain
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger helix.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each HTTP exchange.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport-level retries for transient failures
// (connection errors, 429, and 5xx responses).
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// WithInterceptors installs an interceptor chain around every exchange.
func WithInterceptors(chain *helix.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Deliver the last response even when the retry policy is exhausted,
	// so 4xx/5xx bodies reach the error parser instead of being discarded.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
		userAgent:  "helix-go-client",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do sends the request and reads the full response. A non-2xx status is
// parsed into a *helix.APIError and returned as the error alongside the
// response; a transport failure returns a nil response.
func (c *Client) Do(ctx context.Context, req *Request) (*helix.Response, error) {
	fullURL := c.baseURL + req.Path
	if req.Path != "" && !strings.HasPrefix(req.Path, "/") {
		fullURL = c.baseURL + "/" + req.Path
	}

	var body io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		body = bytes.NewReader(data)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	info := &helix.RequestInfo{
		Method:  req.Method,
		URL:     fullURL,
		Headers: httpReq.Header,
	}

	if c.interceptors != nil {
		if err := c.interceptors.ExecuteRequestInterceptors(ctx, info); err != nil {
			return nil, err
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		sendErr := fmt.Errorf("sending request: %w", err)
		c.runResponseInterceptors(ctx, info, nil, sendErr)

		return nil, sendErr
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		readErr := fmt.Errorf("reading response body: %w", err)
		c.runResponseInterceptors(ctx, info, nil, readErr)

		return nil, readErr
	}

	response := &helix.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": httpResp.StatusCode,
		})
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		apiErr := helix.ParseAPIError(httpResp.StatusCode, respBody)
		c.runResponseInterceptors(ctx, info, response, apiErr)

		return response, apiErr
	}

	c.runResponseInterceptors(ctx, info, response, nil)

	return response, nil
}

func (c *Client) runResponseInterceptors(ctx context.Context, info *helix.RequestInfo, resp *helix.Response, callErr error) {
	if c.interceptors == nil {
		return
	}

	if err := c.interceptors.ExecuteResponseInterceptors(ctx, info, resp, callErr); err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Get sends a GET request for the given path+query.
func (c *Client) Get(ctx context.Context, path string) (*helix.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path})
}

// Post sends a POST request for the given path+query.
func (c *Client) Post(ctx context.Context, path string, body any) (*helix.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put sends a PUT request for the given path+query.
func (c *Client) Put(ctx context.Context, path string, body any) (*helix.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}
