package helix

// Direction selects which pagination query parameter receives the cursor.
type Direction string

const (
	// DirectionAfter requests pages forward from the cursor.
	DirectionAfter Direction = "after"

	// DirectionBefore requests pages backward from the cursor.
	DirectionBefore Direction = "before"
)

// Paginator carries cursor state across successive queries. The caller
// creates one before the first page, passes it to every query via
// WithPaginator, and the Result layer writes the response cursor back into
// it so the next query naturally requests the adjacent page.
//
// There is no structural "exhausted" state: the upstream API signals the
// last page by returning an empty cursor, which callers observe via
// Cursor() == "".
//
// A Paginator is meant to be driven sequentially; it is not safe for
// concurrent use.
type Paginator struct {
	direction Direction
	cursor    string
}

// NewPaginator creates a Paginator for the given direction. An empty
// direction defaults to DirectionAfter.
func NewPaginator(direction Direction) *Paginator {
	if direction == "" {
		direction = DirectionAfter
	}

	return &Paginator{direction: direction}
}

// Direction returns the direction fixed at construction.
func (p *Paginator) Direction() Direction {
	return p.direction
}

// Cursor returns the stored cursor value, empty before the first page and
// after the upstream API reports no further pages.
func (p *Paginator) Cursor() string {
	return p.cursor
}

// Reset clears the cursor so the next query fetches the first page again.
func (p *Paginator) Reset() {
	p.cursor = ""
}

// advance stores the cursor returned by the upstream API. An empty cursor
// marks exhaustion.
func (p *Paginator) advance(cursor string) {
	p.cursor = cursor
}
