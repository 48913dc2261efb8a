package memory

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Compares two non-nil values of the same kind.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
// ok is false if values has different or unsupported types.
func compareValues(a any, b any) (r int, ok bool) {
	switch a := a.(type) {
	case string:
		if b, is := b.(string); is {
			return strings.Compare(a, b), true
		}
	case bool:
		if b, is := b.(bool); is {
			return compareBools(a, b), true
		}
	case int32:
		if b, is := b.(int32); is {
			return compareOrdered(a, b), true
		}
	case int64:
		if b, is := b.(int64); is {
			return compareOrdered(a, b), true
		}
	case decimal.Decimal:
		if b, is := b.(decimal.Decimal); is {
			return a.Cmp(b), true
		}
	case time.Time:
		if b, is := b.(time.Time); is {
			return a.Compare(b), true
		}
	}
	return 0, false
}

type ordered interface {
	~int32 | ~int64
}

func compareOrdered[T ordered](a T, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// false < true
func compareBools(a bool, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

// Same as compareValues, but also orders nulls: null is less then any other value.
func compareNullable(a any, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	r, _ := compareValues(a, b)
	return r
}
