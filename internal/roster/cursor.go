// Package roster holds the pure view-state logic behind the market and
// squad screens: pagination bookkeeping, formation bucketing, and the
// budget gauge. Nothing here touches the terminal or the network.
package roster

// Cursor is the market pagination state. Process-local UI state only; the
// backend exposes no total count, so the end of the data is inferred from
// short pages.
type Cursor struct {
	Offset   int
	PageSize int
}

// NewCursor creates a cursor at the first page.
func NewCursor(pageSize int) Cursor {
	return Cursor{PageSize: pageSize}
}

// Next advances one page. There is no guard against running past the last
// page; an empty page renders as the empty state.
func (c *Cursor) Next() {
	c.Offset += c.PageSize
}

// Prev moves back one page, only when not already at the first page.
func (c *Cursor) Prev() {
	if c.Offset >= c.PageSize {
		c.Offset -= c.PageSize
	}
}

// Reset returns to the first page. Used by explicit refresh.
func (c *Cursor) Reset() {
	c.Offset = 0
}

// Page returns the 1-based page number.
func (c Cursor) Page() int {
	if c.PageSize <= 0 {
		return 1
	}
	return c.Offset/c.PageSize + 1
}

// Controls is the enabled state of the pagination controls after a fetch.
type Controls struct {
	PrevEnabled bool
	NextEnabled bool
}

// PageControls derives the pagination controls from the cursor and the
// size of the page just fetched. Next stays enabled when a full page came
// back; a total count that is an exact multiple of the page size therefore
// allows one extra click onto an empty page, which is handled as the
// empty state.
func PageControls(c Cursor, fetched int) Controls {
	return Controls{
		PrevEnabled: c.Offset > 0,
		NextEnabled: fetched >= c.PageSize,
	}
}
