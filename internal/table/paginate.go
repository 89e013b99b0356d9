package table

// DefaultPageSize is the number of rows on one page.
const DefaultPageSize = 10

// Pagination tracks the current page over the filtered row set.
type Pagination struct {
	Page int
	Size int
}

// NewPagination starts at page 1. A non-positive size selects DefaultPageSize.
func NewPagination(size int) Pagination {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Pagination{Page: 1, Size: size}
}

// SetPage moves to page n. Pages below 1 clamp to 1; there is no upper
// bound, an out-of-range page just slices to nothing.
func (p Pagination) SetPage(n int) Pagination {
	p.Page = max(n, 1)
	return p
}

// Reset returns to the first page.
func (p Pagination) Reset() Pagination {
	p.Page = 1
	return p
}

// Slice returns the rows on the current page.
func (p Pagination) Slice(rows []Row) []Row {
	size := p.size()
	start := (max(p.Page, 1) - 1) * size
	if start >= len(rows) {
		return []Row{}
	}
	end := min(start+size, len(rows))
	return rows[start:end]
}

// PageCount is the number of pages needed for total rows, at least 1.
func (p Pagination) PageCount(total int) int {
	size := p.size()
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

func (p Pagination) size() int {
	if p.Size <= 0 {
		return DefaultPageSize
	}
	return p.Size
}
