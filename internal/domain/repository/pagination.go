package repository

const (
	// DefaultPageSize is used when a list request does not ask for a page size.
	DefaultPageSize = 20
	// MaxPageSize bounds the page size a client may request.
	MaxPageSize = 100
)

// Pagination selects one page of a list. Page is 1-based.
type Pagination struct {
	Page     int
	PageSize int
}

// Normalize clamps the page and page size into their accepted ranges.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	switch {
	case p.PageSize <= 0:
		p.PageSize = DefaultPageSize
	case p.PageSize > MaxPageSize:
		p.PageSize = MaxPageSize
	}

	return p
}

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int {
	n := p.Normalize()

	return (n.Page - 1) * n.PageSize
}

// Limit returns the number of rows of one page.
func (p Pagination) Limit() int {
	return p.Normalize().PageSize
}
