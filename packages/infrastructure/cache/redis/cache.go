package redis

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"quarry/packages/common/config"
	Error "quarry/packages/common/errors"
	"quarry/packages/common/logger"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var cacheLogger = logger.NewSource("CACHE", logger.Default)

type driver struct {
	client      *redis.Client
	isConnected bool
}

func New() *driver {
	return new(driver)
}

func (d *driver) Connect() {
	d.connect(&redis.Options{
		Addr:        config.Secret.CacheURI,
		Password:    config.Secret.CachePassword,
		DB:          config.Secret.CacheDB,
		ReadTimeout: config.Cache.SocketTimeout(),
	})
}

func (d *driver) connect(opt *redis.Options) {
	if d.isConnected {
		cacheLogger.Panic("DB connection failed", "Connection already established", nil)
	}

	cacheLogger.Info("Connecting to DB...", nil)

	d.client = redis.NewClient(opt)

	ctx, cancel := defaultTimeoutContext()
	defer cancel()

	// Service keeps working without cache, every lookup is a miss then.
	if err := d.client.Ping(ctx).Err(); err != nil {
		cacheLogger.Error("DB connection failed, cache is disabled", err.Error(), nil)
		d.client.Close()
		d.client = nil
		return
	}

	cacheLogger.Info("Connecting to DB: OK", nil)

	d.isConnected = true
}

func (d *driver) IsConnected() bool {
	return d.isConnected
}

func (d *driver) Close() *Error.Status {
	if !d.isConnected {
		return Error.NewStatusError(
			"connection not established",
			http.StatusInternalServerError,
		)
	}

	cacheLogger.Info("Disconnecting from DB...", nil)

	if err := d.client.Close(); err != nil {
		return Error.NewStatusError(
			err.Error(),
			http.StatusInternalServerError,
		)
	}

	cacheLogger.Info("Disconnecting from DB: OK", nil)

	d.isConnected = false

	return nil
}

func defaultTimeoutContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), config.Cache.OperationTimeout())
}

// timeout is x5 of defaultTimeoutContext
func longTimeoutContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), config.Cache.OperationTimeout()*5)
}

var errNotConnected = errors.New("connection not established")

// Logs given action and error.
// Returns err converted to *Error.Status.
func logAndConvert(action string, err error) *Error.Status {
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			cacheLogger.Error(
				"Request failed",
				"TIMEOUT: "+action,
				nil,
			)
		} else {
			cacheLogger.Error(
				"Request failed",
				"Failed to "+action+": "+err.Error(),
				nil,
			)
		}
		return Error.StatusInternalError
	}

	cacheLogger.Trace(action, nil)

	return nil
}

func (d *driver) Get(key string) (string, bool) {
	if !d.isConnected {
		return "", false
	}

	ctx, cancel := defaultTimeoutContext()
	defer cancel()

	cachedData, err := d.client.Get(ctx, key).Result()
	if err == redis.Nil {
		cacheLogger.Trace("Miss: "+key, nil)
		return "", false
	}

	return cachedData, logAndConvert("Get: "+key, err) == nil
}

// go-redis driver can handle only this types:
// string, bool, []byte, int, int64, float64, time.Time
//
// encode value before setting it in case if value doesn't belong to any of this types
// (like structs, hashmaps, slices etc)
func (d *driver) Set(key string, value any) *Error.Status {
	switch value.(type) {
	case string, bool, []byte, int, int64, float64, time.Time:
		// Type allowed, do nothing and just go forward
	default:
		return logAndConvert("Set: "+key, fmt.Errorf("invalid cache value type: %T", value))
	}

	if !d.isConnected {
		return logAndConvert("Set: "+key, errNotConnected)
	}

	ctx, cancel := defaultTimeoutContext()
	defer cancel()

	err := d.client.Set(ctx, key, value, config.Cache.TTL()).Err()

	return logAndConvert("Set: "+key, err)
}

func (d *driver) Delete(keys ...string) *Error.Status {
	if !d.isConnected {
		return logAndConvert("Delete: "+strings.Join(keys, ","), errNotConnected)
	}

	ctx, cancel := defaultTimeoutContext()
	defer cancel()

	err := d.client.Unlink(ctx, keys...).Err()

	return logAndConvert("Delete: "+strings.Join(keys, ","), err)
}

func (d *driver) FlushAll() *Error.Status {
	if !d.isConnected {
		return logAndConvert("Flush All", errNotConnected)
	}

	ctx, cancel := defaultTimeoutContext()
	defer cancel()

	err := d.client.FlushAll(ctx).Err()

	return logAndConvert("Flush All", err)
}

var deletePatternAction = "Delete Pattern: "

func (d *driver) DeletePattern(pattern string) *Error.Status {
	if !d.isConnected {
		return logAndConvert(deletePatternAction+pattern, errNotConnected)
	}

	var cursor uint64
	var keys []string
	var err error

	ctx, cancel := longTimeoutContext()
	defer cancel()

	deleted := 0

	// Use SCAN to find all keys matching the pattern
	for {
		if err := ctx.Err(); err != nil {
			return logAndConvert(deletePatternAction+pattern, err)
		}

		keys, cursor, err = d.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return logAndConvert(deletePatternAction+pattern, fmt.Errorf("error scanning keys: %w", err))
		}

		// Delete all found keys in a pipeline for efficiency
		if len(keys) > 0 {
			pipeline := d.client.Pipeline()

			for _, key := range keys {
				pipeline.Unlink(ctx, key)
			}

			if _, err = pipeline.Exec(ctx); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return logAndConvert(deletePatternAction+pattern, ctxErr)
				}
				return logAndConvert(deletePatternAction+pattern, fmt.Errorf("error deleting keys: %w", err))
			}

			deleted += len(keys)
		}

		// Exit when cursor is 0 (no more keys to scan)
		if cursor == 0 {
			cacheLogger.Info("Deleted "+strconv.Itoa(deleted)+" keys matching "+pattern, nil)
			return logAndConvert(deletePatternAction+pattern, nil)
		}
	}
}
