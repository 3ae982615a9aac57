package pagination

// DefaultWindowSize is the number of consecutive page numbers shown around
// the current page.
const DefaultWindowSize = 3

// Link is one entry of a pagination bar: either a page number or an ellipsis.
type Link struct {
	Page     int  `json:"page,omitempty"     yaml:"page,omitempty"`
	Current  bool `json:"current,omitempty"  yaml:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty" yaml:"ellipsis,omitempty"`
}

// Window returns the page links for a pagination bar.
//
// Up to size consecutive pages are shown, centered on current where
// possible and shifted inward at either end. When the first or last page
// falls outside that run it is appended as its own link, with an ellipsis
// between it and the run if pages were skipped. With size 3 and 10 pages:
//
//	current=1  -> 1 2 3 … 10
//	current=5  -> 1 … 4 5 6 … 10
//	current=9  -> 1 … 8 9 10
func Window(current, totalPages, size int) []Link {
	if totalPages < MinPage {
		totalPages = MinPage
	}
	if size < 1 {
		size = DefaultWindowSize
	}
	current = ClampPage(current, totalPages)

	span := min(size, totalPages)
	start := current - size/2
	start = max(MinPage, min(start, totalPages-span+1))
	end := start + span - 1

	links := make([]Link, 0, span+4)

	if start > MinPage {
		links = append(links, Link{Page: MinPage})
		if start > MinPage+1 {
			links = append(links, Link{Ellipsis: true})
		}
	}

	for p := start; p <= end; p++ {
		links = append(links, Link{Page: p, Current: p == current})
	}

	if end < totalPages {
		if end < totalPages-1 {
			links = append(links, Link{Ellipsis: true})
		}
		links = append(links, Link{Page: totalPages})
	}

	return links
}
