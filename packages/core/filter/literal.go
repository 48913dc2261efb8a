package filter

import (
	"quarry/packages/core/catalog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Accepted time layouts, literals without zone are treated as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseInt32(raw string) (int32, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

func parseInt64(raw string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseDecimal(raw string) (decimal.Decimal, bool) {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return v, true
}

func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func parseTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		// time.Parse uses UTC if layout has no zone
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Coerces raw literal into Go type which corresponds to the kind.
// Returns false if literal can't be represented by this kind.
func ParseLiteral(kind catalog.Kind, raw string) (any, bool) {
	switch kind {
	case catalog.String:
		return raw, true
	case catalog.Bool:
		return parseBool(raw)
	case catalog.Int32:
		return parseInt32(raw)
	case catalog.Int64:
		return parseInt64(raw)
	case catalog.Decimal:
		return parseDecimal(raw)
	case catalog.Time:
		return parseTime(raw)
	}
	return nil, false
}
