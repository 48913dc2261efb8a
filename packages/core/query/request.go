// Package query composes filter, sort and paging of a search request
// into a logical query and runs it against a data source.
package query

import (
	"quarry/packages/core/filter"
	"slices"
)

// Condition applied by server unless client filters by the same column.
type DefaultFilter struct {
	Column string
	// "<operator>:<value>" or just "<value>" (same as "eq:<value>")
	Spec string
}

// Creates default filters from map, sorted by column name.
func DefaultsFromMap(m map[string]string) []DefaultFilter {
	columns := make([]string, 0, len(m))
	for column := range m {
		columns = append(columns, column)
	}
	slices.Sort(columns)

	defaults := make([]DefaultFilter, 0, len(m))
	for _, column := range columns {
		defaults = append(defaults, DefaultFilter{Column: column, Spec: m[column]})
	}
	return defaults
}

type Request struct {
	Filter   string
	OrderBy  string
	PageNo   int
	PageSize int
	Defaults []DefaultFilter
	// If true, then unknown column fails the whole request with *InvalidColumnError,
	// otherwise clause, default filter or ordering with such column is ignored.
	Strict bool
	// Optional, receives all clauses which were ignored.
	Observer Observer
}

type Role string

const (
	FilterRole        Role = "filter"
	DefaultFilterRole Role = "default filter"
	OrderByRole       Role = "orderBy"
)

// Describes part of the request which was ignored.
type Drop struct {
	Role   Role
	Reason filter.DropReason
	// Raw text of the ignored part
	Fragment string
}

// Receives notifications about ignored parts of the request.
// Must not block, it's called synchronously.
type Observer func(drop Drop)

func (o Observer) notify(role Role, reason filter.DropReason, fragment string) {
	if o != nil {
		o(Drop{Role: role, Reason: reason, Fragment: fragment})
	}
}
