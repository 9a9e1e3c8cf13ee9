package helix

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance. Credential errors are raised before
// any network I/O and always propagate to the caller as hard failures;
// transport and API errors are carried as the failure case of a Result.
var (
	ErrMissingClientID = errors.New("no client ID configured")
	ErrMissingToken    = errors.New("no authentication token configured")
	ErrConfigRequired  = errors.New("config is required")
)

// APIError represents the Helix error envelope, e.g.
// {"error":"Unauthorized","status":401,"message":"Invalid OAuth token"}.
type APIError struct {
	Title   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status: %d)", e.Title, e.Message, e.Status)
}

// ParseAPIError builds an APIError from a non-2xx response. When the body
// is not the standard envelope, the status line stands in for the missing
// fields so the error is still meaningful.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{}

	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Status == 0 {
		apiErr.Status = statusCode
	}

	if apiErr.Title == "" {
		apiErr.Title = http.StatusText(statusCode)
	}

	return apiErr
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsRateLimited checks if the error is a rate limit rejection.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}

	return false
}
