package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/streamkit-io/helix/internal/client"
	"github.com/streamkit-io/helix/pkg/helix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamsClient_List(t *testing.T) {
	t.Parallel()

	t.Run("repeated-key filters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/streams", request.URL.Path)
			assert.Equal(t, "user_login=shroud&user_login=lirik&first=2", request.URL.RawQuery)

			_, _ = writer.Write([]byte(`{
				"data": [
					{"id": "1", "user_login": "shroud", "type": "live", "viewer_count": 20000},
					{"id": "2", "user_login": "lirik", "type": "live", "viewer_count": 15000}
				],
				"pagination": {"cursor": "eyJiIjp7"}
			}`))
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		streams, err := cli.Streams().List(context.Background(), &helix.StreamsListParams{
			UserLogins: []string{"shroud", "lirik"},
			First:      2,
		})
		require.NoError(t, err)
		require.Len(t, streams.Data, 2)
		assert.Equal(t, "shroud", streams.Data[0].UserLogin)
		assert.Equal(t, 20000, streams.Data[0].ViewerCount)
		assert.Equal(t, "eyJiIjp7", streams.Pagination.Cursor)
	})

	t.Run("nil params lists the firehose", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.URL.RawQuery)
			_, _ = writer.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		streams, err := cli.Streams().List(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, streams.Data)
	})

	t.Run("api failure surfaces as error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusTooManyRequests)
			_, _ = writer.Write([]byte(`{"error":"Too Many Requests","status":429,"message":"slow down"}`))
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		_, err := cli.Streams().List(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, helix.IsRateLimited(err))
	})
}
