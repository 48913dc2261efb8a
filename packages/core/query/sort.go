package query

import (
	"quarry/packages/core/catalog"
	"quarry/packages/core/filter"
	"strings"
)

// Resolves "<column> [asc|desc]" into order.
// Direction is case insensitive, missing or unknown direction means ascending.
// Returns nil order if orderBy is empty or column is unknown and request isn't strict.
func resolveOrder[E any](cat *catalog.Catalog[E], req *Request) (*Order, error) {
	parts := strings.Fields(req.OrderBy)
	if len(parts) == 0 {
		return nil, nil
	}

	column, ok := cat.Lookup(parts[0])
	if !ok {
		if req.Strict {
			return nil, invalidColumn(cat, OrderByRole, parts[0])
		}
		req.Observer.notify(OrderByRole, filter.UnresolvedColumn, req.OrderBy)
		return nil, nil
	}

	order := &Order{Column: column.Descriptor}

	if len(parts) > 1 && strings.EqualFold(parts[1], "desc") {
		order.Descending = true
	}

	return order, nil
}
