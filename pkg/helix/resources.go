package helix

import (
	"context"
	"time"
)

// User represents a Twitch user account.
type User struct {
	ID              string    `json:"id"                yaml:"id"`
	Login           string    `json:"login"             yaml:"login"`
	DisplayName     string    `json:"display_name"      yaml:"display_name"`
	Type            string    `json:"type"              yaml:"type"`
	BroadcasterType string    `json:"broadcaster_type"  yaml:"broadcaster_type"`
	Description     string    `json:"description"       yaml:"description"`
	ProfileImageURL string    `json:"profile_image_url" yaml:"profile_image_url"`
	OfflineImageURL string    `json:"offline_image_url" yaml:"offline_image_url"`
	CreatedAt       time.Time `json:"created_at"        yaml:"created_at"`
}

// FollowedChannel represents one entry of a user's followed channels.
type FollowedChannel struct {
	BroadcasterID    string    `json:"broadcaster_id"    yaml:"broadcaster_id"`
	BroadcasterLogin string    `json:"broadcaster_login" yaml:"broadcaster_login"`
	BroadcasterName  string    `json:"broadcaster_name"  yaml:"broadcaster_name"`
	FollowedAt       time.Time `json:"followed_at"       yaml:"followed_at"`
}

// Stream represents a live broadcast.
type Stream struct {
	ID           string    `json:"id"            yaml:"id"`
	UserID       string    `json:"user_id"       yaml:"user_id"`
	UserLogin    string    `json:"user_login"    yaml:"user_login"`
	UserName     string    `json:"user_name"     yaml:"user_name"`
	GameID       string    `json:"game_id"       yaml:"game_id"`
	GameName     string    `json:"game_name"     yaml:"game_name"`
	Type         string    `json:"type"          yaml:"type"`
	Title        string    `json:"title"         yaml:"title"`
	ViewerCount  int       `json:"viewer_count"  yaml:"viewer_count"`
	StartedAt    time.Time `json:"started_at"    yaml:"started_at"`
	Language     string    `json:"language"      yaml:"language"`
	ThumbnailURL string    `json:"thumbnail_url" yaml:"thumbnail_url"`
	IsMature     bool      `json:"is_mature"     yaml:"is_mature"`
}

// Game represents a game or category.
type Game struct {
	ID        string `json:"id"          yaml:"id"`
	Name      string `json:"name"        yaml:"name"`
	BoxArtURL string `json:"box_art_url" yaml:"box_art_url"`
	IGDBID    string `json:"igdb_id"     yaml:"igdb_id"`
}

// Clip represents a published clip.
type Clip struct {
	ID              string    `json:"id"               yaml:"id"`
	URL             string    `json:"url"              yaml:"url"`
	EmbedURL        string    `json:"embed_url"        yaml:"embed_url"`
	BroadcasterID   string    `json:"broadcaster_id"   yaml:"broadcaster_id"`
	BroadcasterName string    `json:"broadcaster_name" yaml:"broadcaster_name"`
	CreatorID       string    `json:"creator_id"       yaml:"creator_id"`
	CreatorName     string    `json:"creator_name"     yaml:"creator_name"`
	VideoID         string    `json:"video_id"         yaml:"video_id"`
	GameID          string    `json:"game_id"          yaml:"game_id"`
	Language        string    `json:"language"         yaml:"language"`
	Title           string    `json:"title"            yaml:"title"`
	ViewCount       int       `json:"view_count"       yaml:"view_count"`
	CreatedAt       time.Time `json:"created_at"       yaml:"created_at"`
	ThumbnailURL    string    `json:"thumbnail_url"    yaml:"thumbnail_url"`
	Duration        float64   `json:"duration"         yaml:"duration"`
}

// CreatedClip is the response to a clip creation request. The clip is
// produced asynchronously; EditURL points at the edit page.
type CreatedClip struct {
	ID      string `json:"id"       yaml:"id"`
	EditURL string `json:"edit_url" yaml:"edit_url"`
}

// Video represents a published VOD.
type Video struct {
	ID           string    `json:"id"            yaml:"id"`
	StreamID     string    `json:"stream_id"     yaml:"stream_id"`
	UserID       string    `json:"user_id"       yaml:"user_id"`
	UserLogin    string    `json:"user_login"    yaml:"user_login"`
	UserName     string    `json:"user_name"     yaml:"user_name"`
	Title        string    `json:"title"         yaml:"title"`
	Description  string    `json:"description"   yaml:"description"`
	CreatedAt    time.Time `json:"created_at"    yaml:"created_at"`
	PublishedAt  time.Time `json:"published_at"  yaml:"published_at"`
	URL          string    `json:"url"           yaml:"url"`
	ThumbnailURL string    `json:"thumbnail_url" yaml:"thumbnail_url"`
	Viewable     string    `json:"viewable"      yaml:"viewable"`
	ViewCount    int       `json:"view_count"    yaml:"view_count"`
	Language     string    `json:"language"      yaml:"language"`
	Type         string    `json:"type"          yaml:"type"`
	Duration     string    `json:"duration"      yaml:"duration"`
}

// ChannelInfo represents a channel's broadcast settings.
type ChannelInfo struct {
	BroadcasterID       string   `json:"broadcaster_id"       yaml:"broadcaster_id"`
	BroadcasterLogin    string   `json:"broadcaster_login"    yaml:"broadcaster_login"`
	BroadcasterName     string   `json:"broadcaster_name"     yaml:"broadcaster_name"`
	BroadcasterLanguage string   `json:"broadcaster_language" yaml:"broadcaster_language"`
	GameID              string   `json:"game_id"              yaml:"game_id"`
	GameName            string   `json:"game_name"            yaml:"game_name"`
	Title               string   `json:"title"                yaml:"title"`
	Delay               int      `json:"delay"                yaml:"delay"`
	Tags                []string `json:"tags"                 yaml:"tags"`
}

// ChannelSearchResult represents one hit of a channel search.
type ChannelSearchResult struct {
	ID                  string    `json:"id"                   yaml:"id"`
	BroadcasterLogin    string    `json:"broadcaster_login"    yaml:"broadcaster_login"`
	DisplayName         string    `json:"display_name"         yaml:"display_name"`
	BroadcasterLanguage string    `json:"broadcaster_language" yaml:"broadcaster_language"`
	GameID              string    `json:"game_id"              yaml:"game_id"`
	GameName            string    `json:"game_name"            yaml:"game_name"`
	IsLive              bool      `json:"is_live"              yaml:"is_live"`
	ThumbnailURL        string    `json:"thumbnail_url"        yaml:"thumbnail_url"`
	Title               string    `json:"title"                yaml:"title"`
	StartedAt           time.Time `json:"started_at"           yaml:"started_at"`
}

// UsersListParams filters a users lookup. IDs and Logins may be combined,
// up to 100 values total.
type UsersListParams struct {
	IDs    []string
	Logins []string
}

// FollowedChannelsParams filters a followed-channels listing.
type FollowedChannelsParams struct {
	UserID        string
	BroadcasterID string
	First         int
	Paginator     *Paginator
}

// StreamsListParams filters a streams listing.
type StreamsListParams struct {
	UserIDs    []string
	UserLogins []string
	GameIDs    []string
	Type       string
	Language   string
	First      int
	Paginator  *Paginator
}

// GamesListParams filters a games lookup.
type GamesListParams struct {
	IDs   []string
	Names []string
}

// TopGamesParams pages through the most-watched categories.
type TopGamesParams struct {
	First     int
	Paginator *Paginator
}

// ClipsListParams filters a clips listing. Exactly one of BroadcasterID,
// GameID, and IDs should be supplied.
type ClipsListParams struct {
	BroadcasterID string
	GameID        string
	IDs           []string
	First         int
	Paginator     *Paginator
}

// ClipCreateParams configures clip creation.
type ClipCreateParams struct {
	BroadcasterID string
	HasDelay      bool
}

// VideosListParams filters a videos listing. Exactly one of IDs, UserID,
// and GameID should be supplied.
type VideosListParams struct {
	IDs       []string
	UserID    string
	GameID    string
	Period    string
	Sort      string
	Type      string
	First     int
	Paginator *Paginator
}

// ChannelsListParams selects the channels to look up.
type ChannelsListParams struct {
	BroadcasterIDs []string
}

// ChannelSearchParams configures a channel search.
type ChannelSearchParams struct {
	Query     string
	LiveOnly  bool
	First     int
	Paginator *Paginator
}

// UsersClient provides access to user resources.
type UsersClient interface {
	List(ctx context.Context, params *UsersListParams) (*ListResponse[User], error)
	// UpdateDescription updates the authenticated user's description and
	// requires a resolvable token.
	UpdateDescription(ctx context.Context, description string) (*ListResponse[User], error)
	ListFollowed(ctx context.Context, params *FollowedChannelsParams) (*ListResponse[FollowedChannel], error)
}

// StreamsClient provides access to live streams.
type StreamsClient interface {
	List(ctx context.Context, params *StreamsListParams) (*ListResponse[Stream], error)
}

// GamesClient provides access to games and categories.
type GamesClient interface {
	List(ctx context.Context, params *GamesListParams) (*ListResponse[Game], error)
	ListTop(ctx context.Context, params *TopGamesParams) (*ListResponse[Game], error)
}

// ClipsClient provides access to clips.
type ClipsClient interface {
	List(ctx context.Context, params *ClipsListParams) (*ListResponse[Clip], error)
	// Create requires a resolvable token.
	Create(ctx context.Context, params *ClipCreateParams) (*ListResponse[CreatedClip], error)
}

// VideosClient provides access to VODs.
type VideosClient interface {
	List(ctx context.Context, params *VideosListParams) (*ListResponse[Video], error)
}

// ChannelsClient provides access to channel information and search.
type ChannelsClient interface {
	List(ctx context.Context, params *ChannelsListParams) (*ListResponse[ChannelInfo], error)
	Search(ctx context.Context, params *ChannelSearchParams) (*ListResponse[ChannelSearchResult], error)
}
