package transport

import "quarry/packages/common/logger"

var Logger = logger.NewSource("HTTP", logger.Default)
