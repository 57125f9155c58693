// Package requestid correlates log lines and outbound calls belonging to the
// same incoming HTTP request.
//
// Middleware accepts a client supplied X-Request-ID when it is a short token
// of letters, digits, '-' and '_', and otherwise generates a UUIDv4. The ID
// is stored in the request context, echoed in the response header, injected
// into log records through LoggerExtractor and forwarded to the translation
// server through Propagate.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
