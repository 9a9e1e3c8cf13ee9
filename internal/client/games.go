package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/streamkit-io/helix/pkg/helix"
)

// GamesClient implements helix.GamesClient.
type GamesClient struct {
	client *Client
}

// NewGamesClient creates a new games client.
func NewGamesClient(client *Client) *GamesClient {
	return &GamesClient{client: client}
}

// List implements helix.GamesClient.List. Names are percent-encoded since
// category names routinely contain spaces.
func (g *GamesClient) List(ctx context.Context, params *helix.GamesListParams) (*helix.ListResponse[helix.Game], error) {
	query := helix.NewParams()

	if params != nil {
		if len(params.IDs) > 0 {
			query.Add("id", params.IDs...)
		}

		for _, name := range params.Names {
			query.Add("name", url.QueryEscape(name))
		}
	}

	res, err := g.client.Get(ctx, "/games", query)

	return decodeList[helix.Game](res, err, "listing games")
}

// ListTop implements helix.GamesClient.ListTop.
func (g *GamesClient) ListTop(ctx context.Context, params *helix.TopGamesParams) (*helix.ListResponse[helix.Game], error) {
	query := helix.NewParams()

	var opts []helix.QueryOption

	if params != nil {
		if params.First > 0 {
			query.Set("first", strconv.Itoa(params.First))
		}

		if params.Paginator != nil {
			opts = append(opts, helix.WithPaginator(params.Paginator))
		}
	}

	res, err := g.client.Get(ctx, "/games/top", query, opts...)

	return decodeList[helix.Game](res, err, "listing top games")
}
