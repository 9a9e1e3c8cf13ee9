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

func TestClipsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/clips", request.URL.Path)
		assert.Equal(t, "broadcaster_id=1234&first=5", request.URL.RawQuery)

		_, _ = writer.Write([]byte(`{
			"data": [{
				"id": "AwkwardHelplessSalamanderSwiftRage",
				"broadcaster_id": "1234",
				"title": "babymetal",
				"view_count": 170,
				"duration": 60.0
			}],
			"pagination": {"cursor": "eyJiIjpudWxs"}
		}`))
	}))
	defer server.Close()

	cli := client.NewTestClient(server.URL)

	clips, err := cli.Clips().List(context.Background(), &helix.ClipsListParams{
		BroadcasterID: "1234",
		First:         5,
	})
	require.NoError(t, err)
	require.Len(t, clips.Data, 1)
	assert.Equal(t, "babymetal", clips.Data[0].Title)
	assert.InDelta(t, 60.0, clips.Data[0].Duration, 0.001)
}

func TestClipsClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("posts with token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/clips", request.URL.Path)
			assert.Equal(t, "broadcaster_id=1234&has_delay=true", request.URL.RawQuery)
			assert.Equal(t, "Bearer user-token", request.Header.Get("Authorization"))

			writer.WriteHeader(http.StatusAccepted)
			_, _ = writer.Write([]byte(`{
				"data": [{
					"id": "FiveWordsForClipSlug",
					"edit_url": "https://clips.twitch.tv/FiveWordsForClipSlug/edit"
				}]
			}`))
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)
		cli.SetToken("user-token")

		created, err := cli.Clips().Create(context.Background(), &helix.ClipCreateParams{
			BroadcasterID: "1234",
			HasDelay:      true,
		})
		require.NoError(t, err)
		require.Len(t, created.Data, 1)
		assert.Equal(t, "FiveWordsForClipSlug", created.Data[0].ID)
		assert.Contains(t, created.Data[0].EditURL, "/edit")
	})

	t.Run("fails without a token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		}))
		defer server.Close()

		cli := client.NewTestClient(server.URL)

		_, err := cli.Clips().Create(context.Background(), &helix.ClipCreateParams{BroadcasterID: "1234"})
		assert.ErrorIs(t, err, helix.ErrMissingToken)
	})
}
