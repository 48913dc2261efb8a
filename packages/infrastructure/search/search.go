// Package search runs search requests of the API against data sources,
// caching result pages and reporting ignored request fragments.
package search

import (
	"context"
	"encoding/hex"
	"quarry/packages/common/encoding/json"
	Error "quarry/packages/common/errors"
	"quarry/packages/common/logger"
	"quarry/packages/core/catalog"
	"quarry/packages/core/query"
	"quarry/packages/infrastructure/cache"
	"quarry/packages/infrastructure/metrics"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

var searchLogger = logger.NewSource("SEARCH", logger.Default)

// Creates cache key which is same for all equivalent requests.
func cacheKey(base string, req *query.Request) string {
	h := xxhash.New()

	write := func(s string) {
		h.WriteString(s)
		h.WriteString("\x00")
	}

	write(req.Filter)
	write(req.OrderBy)
	write(strconv.Itoa(req.PageNo))
	write(strconv.Itoa(req.PageSize))
	write(strconv.FormatBool(req.Strict))
	for _, d := range req.Defaults {
		write(d.Column)
		write(d.Spec)
	}

	var sum [8]byte
	return base + hex.EncodeToString(h.Sum(sum[:0]))
}

// Logs and counts dropped fragments, then calls next observer if there is one.
func observe(entity string, meta logger.Meta, next query.Observer) query.Observer {
	return func(drop query.Drop) {
		searchLogger.Debug(
			"Ignored "+string(drop.Role)+" fragment of "+entity+" search '"+drop.Fragment+"': "+drop.Reason.String(),
			meta,
		)
		metrics.DroppedFragmentsTotal.WithLabelValues(string(drop.Role), drop.Reason.String()).Inc()

		if next != nil {
			next(drop)
		}
	}
}

// Runs req against src, result pages are cached under cacheKeyBase.
// Cached pages are used if they exists, in this case src isn't called.
func Run[E any, R any](
	ctx context.Context,
	entity string,
	cacheKeyBase string,
	src query.Source[E],
	cat *catalog.Catalog[E],
	req query.Request,
	selector func(entity *E) R,
	meta logger.Meta,
) (*query.PagedResult[R], *Error.Status) {
	start := time.Now()
	defer func() {
		metrics.SearchDuration.WithLabelValues(entity).Observe(time.Since(start).Seconds())
	}()

	key := cacheKey(cacheKeyBase, &req)

	if cached, hit := cache.Client.Get(key); hit {
		result, err := json.Unmarshal[*query.PagedResult[R]]([]byte(cached))
		if err == nil {
			metrics.CacheTotal.WithLabelValues("hit").Inc()
			metrics.SearchTotal.WithLabelValues(entity, "cached").Inc()
			return result, nil
		}

		// Invalid cache entry, delete it to prevent futher cache errors.
		cache.Client.Delete(key)
	}
	metrics.CacheTotal.WithLabelValues("miss").Inc()

	searchLogger.Trace("Searching "+entity+"...", meta)

	req.Observer = observe(entity, meta, req.Observer)

	result, err := query.Find(ctx, src, cat, req, selector)
	if err != nil {
		metrics.SearchTotal.WithLabelValues(entity, "error").Inc()
		return nil, ConvertError(err, meta)
	}

	metrics.SearchTotal.WithLabelValues(entity, "ok").Inc()

	searchLogger.Trace("Searching "+entity+": OK", meta)

	if encoded, err := json.Marshal(result); err == nil {
		cache.Client.Set(key, encoded)
	}

	return result, nil
}
