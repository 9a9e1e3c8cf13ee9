// Package helixclient provides the main entry point for creating Twitch
// Helix API clients.
package helixclient

import (
	"strings"

	"github.com/streamkit-io/helix/internal/client"
	"github.com/streamkit-io/helix/pkg/helix"
)

// New creates a new Helix API client from config.
//
// The endpoint is normalized: a trailing slash is trimmed, "https://" is
// added when no scheme is present, and the fixed API path prefix is
// appended unless already there. An empty endpoint targets the production
// Helix origin.
func New(config *helix.Config) (helix.Client, error) {
	if config == nil {
		return nil, helix.ErrConfigRequired
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		endpoint = helix.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	if !strings.HasSuffix(endpoint, helix.APIPathPrefix) {
		endpoint += helix.APIPathPrefix
	}

	return client.New(config, endpoint), nil
}
