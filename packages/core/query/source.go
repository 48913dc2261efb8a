package query

import (
	"context"
	"quarry/packages/core/catalog"
	"quarry/packages/core/filter"
)

type Order struct {
	Column     catalog.Descriptor
	Descending bool
}

// Logical query accumulated from the request.
type Query struct {
	// Joined by AND
	Where []filter.Predicate
	// nil if result must not be sorted
	Order *Order
	// Amount of rows to skip, values below 0 are treated as 0
	Offset int
	// Max amount of rows to take, if it's not above 0 then no rows are taken
	Limit int
}

// Returns conjunction of Where, or nil if there are no conditions.
func (q *Query) Predicate() filter.Predicate {
	return filter.And(q.Where...)
}

// Data source which executes logical queries.
//
// Count must ignore Order, Offset and Limit.
// Both methods must return errors as is, without any handling.
type Source[E any] interface {
	Count(ctx context.Context, q *Query) (int, error)
	Fetch(ctx context.Context, q *Query) ([]E, error)
}
