package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/streamkit-io/helix/pkg/helix"
)

// UsersClient implements helix.UsersClient.
type UsersClient struct {
	client *Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(client *Client) *UsersClient {
	return &UsersClient{client: client}
}

// List implements helix.UsersClient.List.
func (u *UsersClient) List(ctx context.Context, params *helix.UsersListParams) (*helix.ListResponse[helix.User], error) {
	query := helix.NewParams()

	if params != nil {
		if len(params.IDs) > 0 {
			query.Add("id", params.IDs...)
		}

		if len(params.Logins) > 0 {
			query.Add("login", params.Logins...)
		}
	}

	res, err := u.client.Get(ctx, "/users", query)

	return decodeList[helix.User](res, err, "listing users")
}

// UpdateDescription implements helix.UsersClient.UpdateDescription. The
// description is percent-encoded here because the URL builder inserts
// values as given.
func (u *UsersClient) UpdateDescription(ctx context.Context, description string) (*helix.ListResponse[helix.User], error) {
	query := helix.NewParams().Set("description", url.QueryEscape(description))

	res, err := u.client.Put(ctx, "/users", query, helix.RequireToken())

	return decodeList[helix.User](res, err, "updating user description")
}

// ListFollowed implements helix.UsersClient.ListFollowed.
func (u *UsersClient) ListFollowed(ctx context.Context, params *helix.FollowedChannelsParams) (*helix.ListResponse[helix.FollowedChannel], error) {
	query := helix.NewParams()

	var opts []helix.QueryOption

	if params != nil {
		if params.UserID != "" {
			query.Set("user_id", params.UserID)
		}

		if params.BroadcasterID != "" {
			query.Set("broadcaster_id", params.BroadcasterID)
		}

		if params.First > 0 {
			query.Set("first", strconv.Itoa(params.First))
		}

		if params.Paginator != nil {
			opts = append(opts, helix.WithPaginator(params.Paginator))
		}
	}

	res, err := u.client.Get(ctx, "/channels/followed", query, append(opts, helix.RequireToken())...)

	return decodeList[helix.FollowedChannel](res, err, "listing followed channels")
}
