package query

// DefaultMaxLimit caps the page size when no explicit maximum is configured.
const DefaultMaxLimit = 500

// Page is a normalized 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// NewPage normalizes a raw page request: a page below 1 becomes 1, a
// non-positive limit becomes defaultLimit and a limit above maxLimit is capped.
func NewPage(number, limit, defaultLimit, maxLimit int) Page {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	if number < 1 {
		number = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit <= 0 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return Page{Number: number, Limit: limit}
}

// Offset is the number of matching records that precede this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// TotalPages returns ceil(total/limit), or 0 when total is 0.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Pagination is the metadata returned alongside a page of records.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Limit       int   `json:"limit"`
}

// NewPagination derives the metadata for page p given the total match count.
func NewPagination(p Page, total int64) Pagination {
	return Pagination{
		CurrentPage: p.Number,
		TotalPages:  TotalPages(total, p.Limit),
		TotalCount:  total,
		Limit:       p.Limit,
	}
}

// HasNext reports whether a later page holds records.
func (p Pagination) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// HasPrev reports whether an earlier page exists.
func (p Pagination) HasPrev() bool {
	return p.CurrentPage > 1
}
