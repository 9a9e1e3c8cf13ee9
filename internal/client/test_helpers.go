package client

import (
	"github.com/streamkit-io/helix/pkg/helix"
)

// NewTestClient creates a client dispatching against the given base URL
// with the client ID and token most tests expect.
func NewTestClient(baseURL string) *Client {
	return New(&helix.Config{ClientID: "test-client-id"}, baseURL)
}
