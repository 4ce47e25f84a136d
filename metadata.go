package gopaginate

import "github.com/samber/lo"

// Metadata describes the position of a page within the full result set.
type Metadata struct {
	// PrevPage is nil on the first page.
	PrevPage *int `json:"prevPage"`
	// NextPage is nil on the last page and beyond it.
	NextPage    *int  `json:"nextPage"`
	PerPage     int   `json:"perPage"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Total       int64 `json:"total"`
}

// ComputeMetadata maps the total number of rows and the requested page and
// limit to Metadata. The page is not clamped to the available range: a page
// past the end keeps PrevPage = page-1 and has no NextPage.
//
// limit must be positive.
func ComputeMetadata(total int64, page int, limit int) Metadata {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	ret := Metadata{
		PerPage:     limit,
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
	}

	if page > 1 {
		ret.PrevPage = lo.ToPtr(page - 1)
	}
	if page < totalPages {
		ret.NextPage = lo.ToPtr(page + 1)
	}

	return ret
}

// HasPrev reports whether a previous page exists.
func (m Metadata) HasPrev() bool {
	return m.PrevPage != nil
}

// HasNext reports whether a next page exists.
func (m Metadata) HasNext() bool {
	return m.NextPage != nil
}

// PaginatedResult is a generic paginated result container.
type PaginatedResult[T any] struct {
	// Data holds at most Pagination.PerPage elements. Never nil.
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}
