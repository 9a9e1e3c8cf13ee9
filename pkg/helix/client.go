package helix

import (
	"context"
	"net/http"
	"time"
)

// Client is the core query surface. Resource-specific clients (Users,
// Streams, ...) are thin callers that supply a path and parameters to
// Query; anything they can do, a caller can also do directly.
type Client interface {
	// Query executes a single request. The returned error is non-nil only
	// for credential-resolution failures (ErrMissingClientID,
	// ErrMissingToken); transport and API errors are carried as the
	// failure case of the Result.
	Query(ctx context.Context, method, path string, params *Params, opts ...QueryOption) (*Result, error)
	Get(ctx context.Context, path string, params *Params, opts ...QueryOption) (*Result, error)
	Post(ctx context.Context, path string, params *Params, opts ...QueryOption) (*Result, error)
	Put(ctx context.Context, path string, params *Params, opts ...QueryOption) (*Result, error)

	// Credential management. The setters mutate the client and are not
	// synchronized; use one client per logical session or serialize
	// externally. WithToken instead rebinds: it returns a copy of the
	// client carrying the new token, leaving the receiver untouched.
	SetClientID(clientID string)
	SetToken(token string)
	WithToken(token string) Client
	ClientID(override string) (string, error)
	Token(override string) (string, error)

	// Resource clients.
	Users() UsersClient
	Streams() StreamsClient
	Games() GamesClient
	Clips() ClipsClient
	Videos() VideosClient
	Channels() ChannelsClient
}

// QueryOptions collects the per-call options of Query.
type QueryOptions struct {
	// Paginator, when set, has its cursor injected into the query
	// parameters under its direction key. The cursor key is omitted
	// entirely while the cursor is unset (first page).
	Paginator *Paginator

	// Token overrides the client's stored token for this call only.
	Token string

	// RequireToken makes an unresolvable token a hard ErrMissingToken
	// instead of an unauthenticated request.
	RequireToken bool
}

// QueryOption customizes a single Query invocation.
type QueryOption func(*QueryOptions)

// BuildQueryOptions applies opts to a fresh QueryOptions. Nil options are
// ignored.
func BuildQueryOptions(opts ...QueryOption) *QueryOptions {
	options := &QueryOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		opt(options)
	}

	return options
}

// WithPaginator threads a Paginator through the query.
func WithPaginator(paginator *Paginator) QueryOption {
	return func(o *QueryOptions) {
		o.Paginator = paginator
	}
}

// WithRequestToken overrides the stored token for one call without
// mutating shared client state.
func WithRequestToken(token string) QueryOption {
	return func(o *QueryOptions) {
		o.Token = token
	}
}

// RequireToken demands a resolvable token before dispatch.
func RequireToken() QueryOption {
	return func(o *QueryOptions) {
		o.RequireToken = true
	}
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// DefaultAPIEndpoint is the fixed Helix origin used when Config.APIEndpoint
// is empty.
const DefaultAPIEndpoint = "https://api.twitch.tv"

// APIPathPrefix is the fixed path prefix appended to the endpoint.
const APIPathPrefix = "/helix"

// Config represents client configuration for building a helix.Client.
//
// ClientID must be set (here or later via SetClientID) before any query is
// dispatched. AccessToken is optional; when absent, requests go out without
// an Authorization header, which Helix permits on some endpoints.
//
// Retry tuning applies to the transport only and defaults to a single
// attempt; the query pipeline itself never retries.
type Config struct {
	// ClientID is sent as the Client-ID header on every request.
	ClientID string
	// AccessToken, when set, is sent as "Authorization: Bearer <token>".
	AccessToken string
	// APIEndpoint overrides the Helix origin, mainly for tests. Normalized
	// by helixclient.New: trailing slash trimmed, "https://" added when no
	// scheme is present.
	APIEndpoint string

	// HTTPTimeout bounds each HTTP exchange. Zero means the default.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of transport-level retries. Zero
	// keeps the single-attempt default.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is the optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// HTTPClient replaces the underlying HTTP client, mainly for tests.
	HTTPClient *http.Client
}
