package query

import "math"

type PagedResult[R any] struct {
	Data       []R `json:"data"`
	TotalCount int `json:"totalCount"`
	PageNo     int `json:"pageNo"`
	PageSize   int `json:"pageSize"`
}

// Returns amount of rows which precede the page.
// Page numbers below 1 are treated as 1, page size isn't limited.
// Offsets which don't fit into int are saturated to math.MaxInt.
func offset(pageNo int, pageSize int) int {
	skipped := max(pageNo, 1) - 1
	if pageSize > 0 && skipped > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return skipped * pageSize
}
