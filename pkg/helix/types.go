package helix

// Pagination carries the opaque cursor the API returns with list responses.
// An empty cursor means there are no further pages.
type Pagination struct {
	Cursor string `json:"cursor"`
}

// ListResponse represents the standard Helix list envelope.
type ListResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
