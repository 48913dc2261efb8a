package middleware

import "quarry/packages/common/logger"

var log = logger.NewSource("MIDDLEWARE", logger.Default)
