// Package logger builds context-aware slog loggers from functional options.
//
// New returns a *slog.Logger whose handler adds attributes pulled from the
// context (request id, client ip) to every record logged with the *Context
// methods.
//
//	levels := new(slog.LevelVar)
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "agreement"),
//	    logger.WithLevel(lvl),
//	    logger.WithLevelVar(levels),
//	    logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "document uploaded",
//	    logger.Language("hi"),
//	    logger.FileName("lease.pdf"),
//	    logger.Duration(time.Since(start)),
//	)
//
// Options:
//
//   - WithEnvironment: per-environment defaults plus service and env attributes.
//   - WithTextFormatter / WithJSONFormatter, WithOutput: handler output.
//   - WithLevel, WithLevelVar: minimum level, optionally adjustable at runtime.
//   - WithAttr: static attributes.
//   - WithContextExtractors: attributes from context.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
