package helix_test

import (
	"fmt"
	"testing"

	"github.com/streamkit-io/helix/pkg/helix"
	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	apiErr := &helix.APIError{Title: "Unauthorized", Status: 401, Message: "Invalid OAuth token"}
	assert.Equal(t, "Unauthorized: Invalid OAuth token (status: 401)", apiErr.Error())
}

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       []byte
		expected   *helix.APIError
	}{
		{
			name:       "standard envelope",
			statusCode: 400,
			body:       []byte(`{"error":"Bad Request","status":400,"message":"Missing required parameter"}`),
			expected:   &helix.APIError{Title: "Bad Request", Status: 400, Message: "Missing required parameter"},
		},
		{
			name:       "non-json body falls back to status line",
			statusCode: 502,
			body:       []byte("bad gateway"),
			expected:   &helix.APIError{Title: "Bad Gateway", Status: 502},
		},
		{
			name:       "empty body",
			statusCode: 404,
			body:       nil,
			expected:   &helix.APIError{Title: "Not Found", Status: 404},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, helix.ParseAPIError(testCase.statusCode, testCase.body))
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("listing users: %w", &helix.APIError{Title: "Not Found", Status: 404})
	unauthorized := fmt.Errorf("creating clip: %w", &helix.APIError{Title: "Unauthorized", Status: 401})
	rateLimited := error(&helix.APIError{Title: "Too Many Requests", Status: 429})

	assert.True(t, helix.IsNotFound(notFound))
	assert.False(t, helix.IsNotFound(unauthorized))

	assert.True(t, helix.IsUnauthorized(unauthorized))
	assert.False(t, helix.IsUnauthorized(rateLimited))

	assert.True(t, helix.IsRateLimited(rateLimited))
	assert.False(t, helix.IsRateLimited(helix.ErrMissingClientID))
}
