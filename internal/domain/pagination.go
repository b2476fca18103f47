package domain

// Pagination mirrors the list metadata the API returns alongside collections.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
}

// TotalPages derives the page count from the total item count. The page
// number itself is never used for this.
func (p Pagination) TotalPages() int {
	if p.PageSize <= 0 || p.TotalItems <= 0 {
		return 1
	}
	pages := p.TotalItems / p.PageSize
	if p.TotalItems%p.PageSize != 0 {
		pages++
	}
	return pages
}
