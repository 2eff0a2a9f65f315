package domain

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageParams selects a window of a listing.
type PageParams struct {
	Limit  int
	Offset int
}

// Normalize clamps the params into the allowed range.
func (p PageParams) Normalize() PageParams {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Page is one window of a listing together with the total row count.
type Page[T any] struct {
	Items  []T
	Total  int
	Limit  int
	Offset int
}

// HasMore reports whether rows exist after this page.
func (p Page[T]) HasMore() bool {
	return p.Offset+len(p.Items) < p.Total
}
