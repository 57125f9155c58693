package logger

import "errors"

var ErrInvalidLevel = errors.New("invalid log level")
