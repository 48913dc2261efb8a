package query

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsFromMap(t *testing.T) {
	defaults := DefaultsFromMap(map[string]string{
		"Disabled": "false",
		"Category": "in:1|2",
		"Archived": "null:",
	})

	assert.Equal(t, []DefaultFilter{
		{Column: "Archived", Spec: "null:"},
		{Column: "Category", Spec: "in:1|2"},
		{Column: "Disabled", Spec: "false"},
	}, defaults)

	assert.Empty(t, DefaultsFromMap(nil))
}

func TestOffset(t *testing.T) {
	cases := []struct {
		pageNo   int
		pageSize int
		expected int
	}{
		{1, 10, 0},
		{3, 10, 20},
		{0, 10, 0},
		{-1, 10, 0},
		{2, 0, 0},
		{2, 1000, 1000},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, offset(tc.pageNo, tc.pageSize), "page %d size %d", tc.pageNo, tc.pageSize)
	}
}

func TestInvalidColumnError(t *testing.T) {
	err := &InvalidColumnError{Column: "Colour", Role: OrderByRole, Valid: []string{"Id", "Name"}}

	assert.Equal(t, "Invalid orderBy column 'Colour'. Valid: Id, Name", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidColumn))
	assert.True(t, errors.Is(fmt.Errorf("search failed: %w", err), ErrInvalidColumn))
	assert.False(t, errors.Is(errors.New("invalid column"), ErrInvalidColumn))

	err.Role = DefaultFilterRole
	assert.Contains(t, err.Error(), "Invalid default filter column 'Colour'")

	err.Role = FilterRole
	assert.Contains(t, err.Error(), "Invalid column 'Colour'")
}

func TestObserverIsOptional(t *testing.T) {
	var o Observer
	assert.NotPanics(t, func() { o.notify(FilterRole, 0, "x") })
}
