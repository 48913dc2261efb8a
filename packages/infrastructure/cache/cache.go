package cache

import (
	Error "quarry/packages/common/errors"
	"quarry/packages/infrastructure/cache/redis"
)

type client interface {
	Connect()
	Close() *Error.Status
	IsConnected() bool
	// Returns false on miss, on error and if client isn't connected.
	Get(key string) (string, bool)
	Set(key string, value any) *Error.Status
	Delete(keys ...string) *Error.Status
	DeletePattern(pattern string) *Error.Status
	FlushAll() *Error.Status
}

var Client client = redis.New()
