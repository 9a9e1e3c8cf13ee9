package client

import (
	"context"
	"strconv"

	"github.com/streamkit-io/helix/pkg/helix"
)

// ClipsClient implements helix.ClipsClient.
type ClipsClient struct {
	client *Client
}

// NewClipsClient creates a new clips client.
func NewClipsClient(client *Client) *ClipsClient {
	return &ClipsClient{client: client}
}

// List implements helix.ClipsClient.List.
func (c *ClipsClient) List(ctx context.Context, params *helix.ClipsListParams) (*helix.ListResponse[helix.Clip], error) {
	query := helix.NewParams()

	var opts []helix.QueryOption

	if params != nil {
		if params.BroadcasterID != "" {
			query.Set("broadcaster_id", params.BroadcasterID)
		}

		if params.GameID != "" {
			query.Set("game_id", params.GameID)
		}

		if len(params.IDs) > 0 {
			query.Add("id", params.IDs...)
		}

		if params.First > 0 {
			query.Set("first", strconv.Itoa(params.First))
		}

		if params.Paginator != nil {
			opts = append(opts, helix.WithPaginator(params.Paginator))
		}
	}

	res, err := c.client.Get(ctx, "/clips", query, opts...)

	return decodeList[helix.Clip](res, err, "listing clips")
}

// Create implements helix.ClipsClient.Create. The clip is captured from the
// broadcaster's live stream; creation requires a token.
func (c *ClipsClient) Create(ctx context.Context, params *helix.ClipCreateParams) (*helix.ListResponse[helix.CreatedClip], error) {
	query := helix.NewParams()

	if params != nil {
		query.Set("broadcaster_id", params.BroadcasterID)

		if params.HasDelay {
			query.Set("has_delay", "true")
		}
	}

	res, err := c.client.Post(ctx, "/clips", query, helix.RequireToken())

	return decodeList[helix.CreatedClip](res, err, "creating clip")
}
