package query

import (
	"errors"
	"strings"
)

var ErrInvalidColumn = errors.New("invalid column")

// Returned by Find if column can't be resolved and request is strict.
type InvalidColumnError struct {
	Column string
	Role   Role
	// Canonical names of all columns of the entity
	Valid []string
}

func (e *InvalidColumnError) Error() string {
	role := "column"
	switch e.Role {
	case DefaultFilterRole:
		role = "default filter column"
	case OrderByRole:
		role = "orderBy column"
	}
	return "Invalid " + role + " '" + e.Column + "'. Valid: " + strings.Join(e.Valid, ", ")
}

func (e *InvalidColumnError) Is(target error) bool {
	return target == ErrInvalidColumn
}
