package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/streamkit-io/helix/pkg/helix"
)

// ChannelsClient implements helix.ChannelsClient.
type ChannelsClient struct {
	client *Client
}

// NewChannelsClient creates a new channels client.
func NewChannelsClient(client *Client) *ChannelsClient {
	return &ChannelsClient{client: client}
}

// List implements helix.ChannelsClient.List.
func (c *ChannelsClient) List(ctx context.Context, params *helix.ChannelsListParams) (*helix.ListResponse[helix.ChannelInfo], error) {
	query := helix.NewParams()

	if params != nil && len(params.BroadcasterIDs) > 0 {
		query.Add("broadcaster_id", params.BroadcasterIDs...)
	}

	res, err := c.client.Get(ctx, "/channels", query)

	return decodeList[helix.ChannelInfo](res, err, "listing channels")
}

// Search implements helix.ChannelsClient.Search. The search term is
// percent-encoded here because the URL builder inserts values as given.
func (c *ChannelsClient) Search(ctx context.Context, params *helix.ChannelSearchParams) (*helix.ListResponse[helix.ChannelSearchResult], error) {
	query := helix.NewParams()

	var opts []helix.QueryOption

	if params != nil {
		query.Set("query", url.QueryEscape(params.Query))

		if params.LiveOnly {
			query.Set("live_only", "true")
		}

		if params.First > 0 {
			query.Set("first", strconv.Itoa(params.First))
		}

		if params.Paginator != nil {
			opts = append(opts, helix.WithPaginator(params.Paginator))
		}
	}

	res, err := c.client.Get(ctx, "/search/channels", query, opts...)

	return decodeList[helix.ChannelSearchResult](res, err, "searching channels")
}
