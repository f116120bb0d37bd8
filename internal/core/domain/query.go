package domain

// Pagination bounds shared by every list query.
const (
	MinPageSize     = 1
	MaxPageSize     = 100
	DefaultPageSize = 50
)

// Sort directions accepted by list queries.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// PageRequest carries the caller's pagination and sort choice for a list
// query. SortBy must belong to the queried entity's whitelist; ties in the
// sort key have no guaranteed secondary order and callers must not rely
// on tie ordering.
type PageRequest struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// Validate rejects out-of-bounds pagination and malformed sort direction
// before any query runs. Sort field membership is checked against the
// entity's own whitelist by the query builder.
func (p PageRequest) Validate() error {
	if p.Page < 1 {
		return NewValidationError("page", "must be >= 1, got %d", p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return NewValidationError("page_size", "must be between %d and %d, got %d", MinPageSize, MaxPageSize, p.PageSize)
	}
	if p.SortOrder != SortAsc && p.SortOrder != SortDesc {
		return NewValidationError("sort_order", "must be %q or %q, got %q", SortAsc, SortDesc, p.SortOrder)
	}
	return nil
}

// Offset returns the 0-based row offset of the requested page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Pages returns the page count for a result set: ceil(total/pageSize) when
// total > 0, otherwise 1. A page request beyond the last page is not an
// error; it yields an empty item list with the correct total.
func Pages(total int64, pageSize int) int {
	if total <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
