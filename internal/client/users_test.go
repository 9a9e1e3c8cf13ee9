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

func TestUsersClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users", request.URL.Path)
		assert.Equal(t, "id=141981764&login=twitchdev", request.URL.RawQuery)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{
			"data": [{
				"id": "141981764",
				"login": "twitchdev",
				"display_name": "TwitchDev",
				"broadcaster_type": "partner",
				"description": "Supporting third-party developers",
				"created_at": "2016-12-14T20:32:28Z"
			}]
		}`))
	}))
	defer server.Close()

	cli := client.NewTestClient(server.URL)

	users, err := cli.Users().List(context.Background(), &helix.UsersListParams{
		IDs:    []string{"141981764"},
		Logins: []string{"twitchdev"},
	})
	require.NoError(t, err)
	require.Len(t, users.Data, 1)
	assert.Equal(t, "twitchdev", users.Data[0].Login)
	assert.Equal(t, "partner", users.Data[0].BroadcasterType)
	assert.Equal(t, 2016, users.Data[0].CreatedAt.Year())
}

func TestUsersClient_UpdateDescription(t *testing.T) {
	t.Parallel()

	t.Run("sends encoded description over PUT", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PUT", request.Method)
			assert.Equal(t, "/users", request.URL.Path)
			assert.Equal(t, "description=hello+world", request.URL.RawQuery)
			assert.Equal(t, "Bearer user-token", request.Header.Get("Authorization"))

			_, _ = writer.Write([]byte(`{"data":[{"id":"1","description":"hello world"}]}`))
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)
		cli.SetToken("user-token")

		users, err := cli.Users().UpdateDescription(context.Background(), "hello world")
		require.NoError(t, err)
		require.Len(t, users.Data, 1)
		assert.Equal(t, "hello world", users.Data[0].Description)
	})

	t.Run("fails without a token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		_, err := cli.Users().UpdateDescription(context.Background(), "hello")
		assert.ErrorIs(t, err, helix.ErrMissingToken)
	})
}

func TestUsersClient_ListFollowed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/channels/followed", request.URL.Path)
		assert.Equal(t, "123", request.URL.Query().Get("user_id"))
		assert.Equal(t, "25", request.URL.Query().Get("first"))

		_, _ = writer.Write([]byte(`{
			"data": [{
				"broadcaster_id": "654",
				"broadcaster_login": "basketweaver101",
				"broadcaster_name": "BasketWeaver101",
				"followed_at": "2022-05-24T22:22:08Z"
			}],
			"pagination": {"cursor": "eyJiIjpudWxs"}
		}`))
	}))
	defer server.Close()

	paginator := helix.NewPaginator(helix.DirectionAfter)
	cli := client.NewTestClient(server.URL)
	cli.SetToken("user-token")

	followed, err := cli.Users().ListFollowed(context.Background(), &helix.FollowedChannelsParams{
		UserID:    "123",
		First:     25,
		Paginator: paginator,
	})
	require.NoError(t, err)
	require.Len(t, followed.Data, 1)
	assert.Equal(t, "654", followed.Data[0].BroadcasterID)
	assert.Equal(t, "eyJiIjpudWxs", paginator.Cursor())
}
