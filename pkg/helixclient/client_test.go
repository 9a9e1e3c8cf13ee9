package helixclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/streamkit-io/helix/pkg/helix"
	"github.com/streamkit-io/helix/pkg/helixclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		cli, err := helixclient.New(nil)
		assert.ErrorIs(t, err, helix.ErrConfigRequired)
		assert.Nil(t, cli)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		cli, err := helixclient.New(&helix.Config{ClientID: "test-client-id"})
		require.NoError(t, err)
		assert.NotNil(t, cli)
		assert.NotNil(t, cli.Users())
		assert.NotNil(t, cli.Streams())
	})
}

func TestNew_EndpointNormalization(t *testing.T) {
	t.Parallel()

	var seenPath string

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seenPath = request.URL.Path
		_, _ = writer.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	tests := []struct {
		name     string
		endpoint func() string
	}{
		{
			name:     "bare endpoint",
			endpoint: func() string { return server.URL },
		},
		{
			name:     "trailing slash",
			endpoint: func() string { return server.URL + "/" },
		},
		{
			name:     "prefix already present",
			endpoint: func() string { return server.URL + "/helix" },
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cli, err := helixclient.New(&helix.Config{
				ClientID:    "test-client-id",
				APIEndpoint: testCase.endpoint(),
			})
			require.NoError(t, err)

			result, err := cli.Get(context.Background(), "/games", nil, nil)
			require.NoError(t, err)
			require.True(t, result.Succeeded())
			assert.Equal(t, "/helix/games", seenPath)
		})
	}
}
