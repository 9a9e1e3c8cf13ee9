package client

import (
	"context"
	"fmt"

	"github.com/streamkit-io/helix/internal/http"
	"github.com/streamkit-io/helix/pkg/helix"
)

// Client implements the helix.Client interface: it owns the credentials and
// composes URL construction, header resolution, transport dispatch, and
// Result construction into the query pipeline.
//
// Credential setters are not synchronized; a Client is designed for
// single-threaded or externally-serialized use, or one instance per logical
// session.
type Client struct {
	httpClient *http.Client
	clientID   string
	token      string
	logger     helix.Logger

	// Resource clients
	users    helix.UsersClient
	streams  helix.StreamsClient
	games    helix.GamesClient
	clips    helix.ClipsClient
	videos   helix.VideosClient
	channels helix.ChannelsClient
}

// createHTTPOptions builds transport options from config.
func createHTTPOptions(config *helix.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))

		chain := helix.NewInterceptorChain()
		chain.AddResponseInterceptor(helix.LoggingResponseInterceptor(config.Logger))
		httpOpts = append(httpOpts, http.WithInterceptors(chain))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	return httpOpts
}

// New creates a client dispatching against baseURL (origin plus API path
// prefix, already normalized by the facade).
func New(config *helix.Config, baseURL string) *Client {
	httpClient := http.NewClient(baseURL, createHTTPOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		clientID:   config.ClientID,
		token:      config.AccessToken,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client
}

// Query implements helix.Client.Query. The returned error is non-nil only
// for credential-resolution failures; transport and API errors are carried
// as the failure case of the Result and never raised.
func (c *Client) Query(ctx context.Context, method, path string, params *helix.Params, opts ...helix.QueryOption) (*helix.Result, error) {
	options := helix.BuildQueryOptions(opts...)

	query := params.Clone()
	if options.Paginator != nil && options.Paginator.Cursor() != "" {
		query.Set(string(options.Paginator.Direction()), options.Paginator.Cursor())
	}

	pathAndQuery := helix.BuildURL(path, query)

	clientID, err := c.ClientID("")
	if err != nil {
		return nil, err
	}

	headers := map[string]string{"Client-ID": clientID}

	if options.RequireToken {
		token, err := c.Token(options.Token)
		if err != nil {
			return nil, err
		}

		headers["Authorization"] = "Bearer " + token
	} else {
		token := options.Token
		if token == "" {
			token = c.token
		}

		if token != "" {
			headers["Authorization"] = "Bearer " + token
		}
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:  method,
		Path:    pathAndQuery,
		Headers: headers,
	})
	if err != nil {
		return helix.NewFailure(err, options.Paginator), nil
	}

	return helix.NewSuccess(resp, options.Paginator), nil
}

// Get implements helix.Client.Get.
func (c *Client) Get(ctx context.Context, path string, params *helix.Params, opts ...helix.QueryOption) (*helix.Result, error) {
	return c.Query(ctx, "GET", path, params, opts...)
}

// Post implements helix.Client.Post.
func (c *Client) Post(ctx context.Context, path string, params *helix.Params, opts ...helix.QueryOption) (*helix.Result, error) {
	return c.Query(ctx, "POST", path, params, opts...)
}

// Put implements helix.Client.Put.
func (c *Client) Put(ctx context.Context, path string, params *helix.Params, opts ...helix.QueryOption) (*helix.Result, error) {
	return c.Query(ctx, "PUT", path, params, opts...)
}

// SetClientID implements helix.Client.SetClientID.
func (c *Client) SetClientID(clientID string) {
	c.clientID = clientID
}

// SetToken implements helix.Client.SetToken.
func (c *Client) SetToken(token string) {
	c.token = token
}

// WithToken returns a copy of the client carrying the given token. The
// receiver is left untouched, so differently-authenticated calls can share
// one base client without racing on its state.
func (c *Client) WithToken(token string) helix.Client {
	clone := *c
	clone.token = token
	clone.initializeResourceClients()

	return &clone
}

// ClientID resolves the Client-ID header value. A non-empty override is
// returned unchanged without validation.
func (c *Client) ClientID(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if c.clientID != "" {
		return c.clientID, nil
	}

	return "", helix.ErrMissingClientID
}

// Token resolves the bearer token. A non-empty override is returned
// unchanged without validation.
func (c *Client) Token(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if c.token != "" {
		return c.token, nil
	}

	return "", helix.ErrMissingToken
}

// Resource client accessors

// Users implements helix.Client.Users.
func (c *Client) Users() helix.UsersClient {
	return c.users
}

// Streams implements helix.Client.Streams.
func (c *Client) Streams() helix.StreamsClient {
	return c.streams
}

// Games implements helix.Client.Games.
func (c *Client) Games() helix.GamesClient {
	return c.games
}

// Clips implements helix.Client.Clips.
func (c *Client) Clips() helix.ClipsClient {
	return c.clips
}

// Videos implements helix.Client.Videos.
func (c *Client) Videos() helix.VideosClient {
	return c.videos
}

// Channels implements helix.Client.Channels.
func (c *Client) Channels() helix.ChannelsClient {
	return c.channels
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c)
	c.streams = NewStreamsClient(c)
	c.games = NewGamesClient(c)
	c.clips = NewClipsClient(c)
	c.videos = NewVideosClient(c)
	c.channels = NewChannelsClient(c)
}

// decodeList unwraps a query outcome into the standard list envelope,
// surfacing the Result's failure case as a wrapped error.
func decodeList[T any](res *helix.Result, err error, operation string) (*helix.ListResponse[T], error) {
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	if !res.Succeeded() {
		return nil, fmt.Errorf("%s: %w", operation, res.Err())
	}

	var list helix.ListResponse[T]
	if err := res.Decode(&list); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return &list, nil
}
