package ratelimiter

import "errors"

var ErrInvalidConfig = errors.New("invalid rate limit configuration")
