package helix

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the raw outcome of a successful HTTP exchange.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Result is the two-case outcome of a query: exactly one of the wrapped
// response and the wrapped error is populated, decided at construction and
// never mutated afterwards. It also carries the Paginator the query was
// invoked with, unchanged as a reference.
type Result struct {
	resp      *Response
	err       error
	paginator *Paginator
}

// NewSuccess wraps a completed HTTP exchange. When a Paginator is supplied,
// the response body's pagination cursor is written back into it, including
// an empty cursor on the last page so exhaustion is observable. A body that
// cannot be parsed carries no cursor and is treated as the last page, so
// pagination loops always terminate.
func NewSuccess(resp *Response, paginator *Paginator) *Result {
	if paginator != nil {
		var envelope struct {
			Pagination Pagination `json:"pagination"`
		}

		if err := json.Unmarshal(resp.Body, &envelope); err != nil {
			paginator.advance("")
		} else {
			paginator.advance(envelope.Pagination.Cursor)
		}
	}

	return &Result{resp: resp, paginator: paginator}
}

// NewFailure wraps a transport-level error.
func NewFailure(err error, paginator *Paginator) *Result {
	return &Result{err: err, paginator: paginator}
}

// Succeeded reports whether the Result holds a response.
func (r *Result) Succeeded() bool {
	return r.err == nil
}

// Response returns the wrapped response, nil for the failure case.
func (r *Result) Response() *Response {
	return r.resp
}

// Err returns the wrapped error, nil for the success case.
func (r *Result) Err() error {
	return r.err
}

// Paginator returns the Paginator the query was invoked with, or nil when
// the query was not paginated.
func (r *Result) Paginator() *Paginator {
	return r.paginator
}

// Decode unmarshals the response body into v. It fails on a failure Result.
func (r *Result) Decode(v any) error {
	if r.err != nil {
		return fmt.Errorf("decoding failed result: %w", r.err)
	}

	if err := json.Unmarshal(r.resp.Body, v); err != nil {
		return fmt.Errorf("parsing response body: %w", err)
	}

	return nil
}
