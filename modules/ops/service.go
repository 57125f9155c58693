package ops

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/namanchhaparia06/agreement/handler"
	"github.com/namanchhaparia06/agreement/pkg/binder"
	"github.com/namanchhaparia06/agreement/pkg/httpserver"
	"github.com/namanchhaparia06/agreement/pkg/logger"
	"github.com/namanchhaparia06/agreement/pkg/validator"
)

// Levels accepted by PUT /v1/logger.
var levels = []string{"debug", "info", "warn", "error"}

// Service exposes probes and runtime log level control.
type Service struct {
	mu       sync.Mutex
	levelVar *slog.LevelVar
	logger   *slog.Logger
	checks   []httpserver.HealthCheck
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithReadinessChecks adds checks run by /health/ready.
func WithReadinessChecks(checks ...httpserver.HealthCheck) Option {
	return func(s *Service) {
		s.checks = append(s.checks, checks...)
	}
}

// NewService controls the level held by levelVar, which should be the one
// the application logger was built with.
func NewService(levelVar *slog.LevelVar, opts ...Option) *Service {
	if levelVar == nil {
		levelVar = new(slog.LevelVar)
	}
	s := &Service{
		levelVar: levelVar,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the router:
//
//	GET /health/live   always 200 while the process serves
//	GET /health/ready  200 when every readiness check passes, 503 otherwise
//	GET /v1/logger     current level
//	PUT /v1/logger     {"level":"debug"} sets the level
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/health/live", httpserver.HealthCheckHandler(s.logger))
	r.Get("/health/ready", httpserver.HealthCheckHandler(s.logger, s.checks...))

	r.Get("/v1/logger", handler.Wrap(s.getLevel,
		handler.WithErrorHandler[handler.Context, struct{}](s.handleError),
	))
	r.Put("/v1/logger", handler.Wrap(s.setLevel,
		handler.WithBinders[handler.Context, LevelRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, LevelRequest](s.handleError),
	))

	return r
}

// LevelRequest is the body of PUT /v1/logger.
type LevelRequest struct {
	Level string `json:"level"`
}

// LevelResponse reports the active level.
type LevelResponse struct {
	Level string `json:"level"`
}

func (s *Service) getLevel(_ handler.Context, _ struct{}) handler.Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	return handler.JSON(LevelResponse{Level: levelName(s.levelVar.Level())})
}

func (s *Service) setLevel(ctx handler.Context, req LevelRequest) handler.Response {
	name := strings.ToLower(strings.TrimSpace(req.Level))
	if err := validator.Apply(
		validator.Required("level", name),
		validator.InListString("level", name, levels),
	); err != nil {
		verr := handler.NewValidationError()
		for _, e := range validator.ExtractValidationErrors(err) {
			verr.Add(e.Field, e.Message)
		}
		return handler.JSONError(verr)
	}

	level, err := logger.ParseLevel(name)
	if err != nil {
		return handler.JSONError(errors.Join(handler.ErrBadRequest, err))
	}

	s.mu.Lock()
	previous := s.levelVar.Level()
	s.levelVar.Set(level)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "log level changed",
		logger.Component("ops"),
		slog.String("previous", levelName(previous)),
		slog.String("level", levelName(level)),
	)

	return handler.JSON(LevelResponse{Level: levelName(level)},
		handler.WithJSONMeta(map[string]any{"previous": levelName(previous)}),
	)
}

// handleError answers binder failures with a JSON error envelope.
func (s *Service) handleError(ctx handler.Context, err error) {
	switch {
	case errors.Is(err, binder.ErrRequestTooLarge):
		err = errors.Join(handler.ErrRequestEntityTooLarge, err)
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		err = errors.Join(handler.ErrUnsupportedMediaType, err)
	case errors.Is(err, binder.ErrFailedToParseJSON):
		err = errors.Join(handler.ErrBadRequest, err)
	}

	s.logger.WarnContext(ctx, "ops request failed", logger.Component("ops"), logger.Error(err))
	if rerr := handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request()); rerr != nil {
		s.logger.ErrorContext(ctx, "failed to write error response", logger.Error(rerr))
	}
}

func levelName(l slog.Level) string {
	return strings.ToLower(l.String())
}
