package lead

import (
	"github.com/heartmarshall/crm-backend/internal/domain"
)

const (
	sortByCreatedAt = "created_at"
	sortByUpdatedAt = "updated_at"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalize applies defaults and clamps values.
func normalize(f domain.LeadFilter) domain.LeadFilter {
	switch f.SortBy {
	case sortByCreatedAt, sortByUpdatedAt:
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
	default:
		f.SortOrder = sortOrderDESC
	}

	page := domain.PageParams{Limit: f.Limit, Offset: f.Offset}.Normalize()
	f.Limit, f.Offset = page.Limit, page.Offset
	return f
}

// orderBy returns the ORDER BY terms for the normalized filter.
// id breaks ties so pages are stable.
func orderBy(f domain.LeadFilter) []string {
	return []string{"l." + f.SortBy + " " + f.SortOrder, "l.id"}
}
