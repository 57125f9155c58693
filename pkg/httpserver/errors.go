package httpserver

import "errors"

// Run and Shutdown join these with the underlying net/http error.
var (
	ErrStart    = errors.New("httpserver: start")
	ErrShutdown = errors.New("httpserver: graceful shutdown")
)
