package helix

import (
	"context"
	"fmt"
	"net/http"
)

// RequestInfo describes an outgoing request as seen by interceptors.
// Header mutations are applied to the dispatched request.
type RequestInfo struct {
	Method  string
	URL     string
	Headers http.Header
}

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *RequestInfo) error

// ResponseInterceptor is called after a response is received. resp is nil
// and callErr non-nil when the exchange failed at the transport level.
type ResponseInterceptor func(ctx context.Context, req *RequestInfo, resp *Response, callErr error) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors in order.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *RequestInfo) error {
	for _, interceptor := range c.requestInterceptors {
		if err := interceptor(ctx, req); err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors in order.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *RequestInfo, resp *Response, callErr error) error {
	for _, interceptor := range c.responseInterceptors {
		if err := interceptor(ctx, req, resp, callErr); err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs outgoing requests.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *RequestInfo) error {
		logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses and transport failures.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *RequestInfo, resp *Response, callErr error) error {
		fields := map[string]interface{}{
			"method": req.Method,
			"url":    req.URL,
		}

		if resp != nil {
			fields["status_code"] = resp.StatusCode
		}

		if callErr != nil {
			fields["error"] = callErr.Error()
			logger.Error("API Response Error", fields)
		} else {
			logger.Debug("API Response", fields)
		}

		return nil
	}
}

// HeaderInterceptor sets a fixed header on every request.
func HeaderInterceptor(key, value string) RequestInterceptor {
	return func(ctx context.Context, req *RequestInfo) error {
		req.Headers.Set(key, value)

		return nil
	}
}
