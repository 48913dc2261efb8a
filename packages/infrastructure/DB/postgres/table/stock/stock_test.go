package stocktable

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSuccessful(t *testing.T) {
	assert.True(t, isSuccessful(nil))
	assert.True(t, isSuccessful(context.Canceled))
	assert.True(t, isSuccessful(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, isSuccessful(context.DeadlineExceeded))
	assert.False(t, isSuccessful(errors.New("connection refused")))
}

func TestMissingColumns(t *testing.T) {
	assert.Empty(t, missingColumns(table.Columns))
	assert.Equal(t,
		[]string{"description", "enable_disabled"},
		missingColumns(slices.DeleteFunc(slices.Clone(table.Columns), func(col string) bool {
			return col == "description" || col == "enable_disabled"
		})),
	)
}

func TestBreaker(t *testing.T) {
	m := NewManager()
	failure := errors.New("connection refused")

	for range 5 {
		_, err := execute(m, func() (int, error) { return 0, failure })
		assert.ErrorIs(t, err, failure)
	}

	calls := 0
	_, err := execute(m, func() (int, error) {
		calls++
		return 1, nil
	})
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
	assert.Zero(t, calls, "open breaker must not call DB")
	assert.Equal(t, gobreaker.StateOpen, m.breaker.State())
}

func TestBreakerIgnoresCancellation(t *testing.T) {
	m := NewManager()

	for range 10 {
		_, err := execute(m, func() ([]int, error) { return nil, context.Canceled })
		assert.ErrorIs(t, err, context.Canceled)
	}

	r, err := execute(m, func() ([]int, error) { return []int{1, 2}, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, r)
}
