package client

import (
	"context"
	"strconv"

	"github.com/streamkit-io/helix/pkg/helix"
)

// StreamsClient implements helix.StreamsClient.
type StreamsClient struct {
	client *Client
}

// NewStreamsClient creates a new streams client.
func NewStreamsClient(client *Client) *StreamsClient {
	return &StreamsClient{client: client}
}

// List implements helix.StreamsClient.List. Multi-valued filters serialize
// in repeated-key form, one pair per value.
func (s *StreamsClient) List(ctx context.Context, params *helix.StreamsListParams) (*helix.ListResponse[helix.Stream], error) {
	query := helix.NewParams()

	var opts []helix.QueryOption

	if params != nil {
		if len(params.UserIDs) > 0 {
			query.Add("user_id", params.UserIDs...)
		}

		if len(params.UserLogins) > 0 {
			query.Add("user_login", params.UserLogins...)
		}

		if len(params.GameIDs) > 0 {
			query.Add("game_id", params.GameIDs...)
		}

		if params.Type != "" {
			query.Set("type", params.Type)
		}

		if params.Language != "" {
			query.Set("language", params.Language)
		}

		if params.First > 0 {
			query.Set("first", strconv.Itoa(params.First))
		}

		if params.Paginator != nil {
			opts = append(opts, helix.WithPaginator(params.Paginator))
		}
	}

	res, err := s.client.Get(ctx, "/streams", query, opts...)

	return decodeList[helix.Stream](res, err, "listing streams")
}
