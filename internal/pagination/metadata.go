package pagination

import "fmt"

// Meta contains metadata about one rendered page.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	FirstIndex  int  `json:"first_index"  yaml:"first_index"`
	LastIndex   int  `json:"last_index"   yaml:"last_index"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta builds metadata for the requested page of totalItems rows.
// The page is clamped into range, so the result always satisfies
// 1 <= CurrentPage <= TotalPages.
func NewMeta(page, pageSize, totalItems int) Meta {
	totalPages := TotalPages(totalItems, pageSize)
	current := ClampPage(page, totalPages)

	first, last := 0, 0
	if start, end := Bounds(current, pageSize, totalItems); end > start {
		first, last = start+1, end
	}

	return Meta{
		CurrentPage: current,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		FirstIndex:  first,
		LastIndex:   last,
		HasPrevious: current > MinPage,
		HasNext:     current < totalPages,
	}
}

// Caption renders the "Showing X to Y of Z" line.
func (m Meta) Caption() string {
	return fmt.Sprintf("Showing %d to %d of %d", m.FirstIndex, m.LastIndex, m.TotalItems)
}

// PreviousPage returns the page a "previous" control navigates to.
func (m Meta) PreviousPage() int {
	return max(MinPage, m.CurrentPage-1)
}

// NextPage returns the page a "next" control navigates to.
func (m Meta) NextPage() int {
	return min(m.TotalPages, m.CurrentPage+1)
}
