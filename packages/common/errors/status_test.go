package errs

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	t.Run("side", func(t *testing.T) {
		assert.Equal(t, ClientSide, StatusNotFound.Side())
		assert.Equal(t, ServerSide, StatusInternalError.Side())
		assert.Equal(t, ServerSide, StatusServiceUnavailable.Side())
		assert.Panics(t, func() { NewStatusError("ok", http.StatusOK).Side() })
	})

	t.Run("invalid status", func(t *testing.T) {
		assert.Panics(t, func() { NewStatusError("x", 99) })
		assert.Panics(t, func() { NewStatusError("x", 600) })
	})

	t.Run("is status error", func(t *testing.T) {
		is, e := IsStatusError(StatusTimeout)
		assert.True(t, is)
		assert.Equal(t, http.StatusRequestTimeout, e.Status())

		is, _ = IsStatusError(NoValue)
		assert.False(t, is)
	})

	t.Run("validation to status", func(t *testing.T) {
		assert.Equal(t, "missing", NoValue.ToStatus("missing", "invalid").Error())
		assert.Equal(t, "invalid", InvalidValue.ToStatus("missing", "invalid").Error())
		assert.Equal(t, http.StatusBadRequest, InvalidValue.ToStatus("missing", "invalid").Status())
	})

	t.Run("status text", func(t *testing.T) {
		assert.Equal(t, "Not Found", StatusText(http.StatusNotFound))
		assert.Equal(t, "Unknown Status", StatusText(499))
	})
}
