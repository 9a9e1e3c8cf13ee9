package client

import (
	"context"
	"strconv"

	"github.com/streamkit-io/helix/pkg/helix"
)

// VideosClient implements helix.VideosClient.
type VideosClient struct {
	client *Client
}

// NewVideosClient creates a new videos client.
func NewVideosClient(client *Client) *VideosClient {
	return &VideosClient{client: client}
}

// List implements helix.VideosClient.List.
func (v *VideosClient) List(ctx context.Context, params *helix.VideosListParams) (*helix.ListResponse[helix.Video], error) {
	query := helix.NewParams()

	var opts []helix.QueryOption

	if params != nil {
		if len(params.IDs) > 0 {
			query.Add("id", params.IDs...)
		}

		if params.UserID != "" {
			query.Set("user_id", params.UserID)
		}

		if params.GameID != "" {
			query.Set("game_id", params.GameID)
		}

		if params.Period != "" {
			query.Set("period", params.Period)
		}

		if params.Sort != "" {
			query.Set("sort", params.Sort)
		}

		if params.Type != "" {
			query.Set("type", params.Type)
		}

		if params.First > 0 {
			query.Set("first", strconv.Itoa(params.First))
		}

		if params.Paginator != nil {
			opts = append(opts, helix.WithPaginator(params.Paginator))
		}
	}

	res, err := v.client.Get(ctx, "/videos", query, opts...)

	return decodeList[helix.Video](res, err, "listing videos")
}
