// Package httpserver wraps net/http with graceful shutdown, env-driven
// timeouts and health-check handlers.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives, then
// calls http.Server.Shutdown bounded by the shutdown timeout:
//
//	var cfg httpserver.Config // HTTP_ADDR, HTTP_*_TIMEOUT
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness (no checks) and readiness probes.
// Startup and shutdown failures wrap ErrStart and ErrShutdown.
package httpserver
