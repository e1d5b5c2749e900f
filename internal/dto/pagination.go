package dto

// PageFilter is bound from the query string of every listing endpoint.
// Pages are 1-based.
type PageFilter struct {
	Page     int `form:"page,default=1" validate:"min=1"`
	PageSize int `form:"pageSize,default=10" validate:"min=1,max=100"`
}

// Normalizar clamps out-of-range values back to defaults.
func (f *PageFilter) Normalizar() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 10
	}
}

// Offset returns the row offset for the current page.
func (f PageFilter) Offset() int { return (f.Page - 1) * f.PageSize }

// Pagination is the metadata block included in every list response,
// regardless of whether any filter was applied.
type Pagination struct {
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	Total       int64 `json:"total"`
}

// NewPagination computes totalPages with ceiling division.
func NewPagination(total int64, page, pageSize int) Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
		Total:       total,
	}
}
