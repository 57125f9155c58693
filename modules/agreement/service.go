package agreement

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/namanchhaparia06/agreement/handler"
	"github.com/namanchhaparia06/agreement/modules/agreement/views"
	"github.com/namanchhaparia06/agreement/pkg/binder"
	"github.com/namanchhaparia06/agreement/pkg/i18n"
	"github.com/namanchhaparia06/agreement/pkg/logger"
	"github.com/namanchhaparia06/agreement/pkg/ratelimiter"
	"github.com/namanchhaparia06/agreement/svc/upload"
)

// Service serves the document agreement form.
type Service struct {
	cfg          Config
	uploader     upload.Uploader
	translator   *i18n.Translator
	logger       *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	limiter      *ratelimiter.Bucket
	limitStore   ratelimiter.Store
	memoryStore  *ratelimiter.MemoryStore
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTranslator sets the UI translations. English defaults are used
// without one.
func WithTranslator(t *i18n.Translator) Option {
	return func(s *Service) {
		s.translator = t
	}
}

// WithRateLimitStore keeps throttle buckets in store instead of process
// memory, so replicas share one budget per client address.
func WithRateLimitStore(store ratelimiter.Store) Option {
	return func(s *Service) {
		s.limitStore = store
	}
}

func NewService(cfg Config, uploader upload.Uploader, opts ...Option) *Service {
	s := &Service{
		cfg:      cfg,
		uploader: uploader,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.MaxUploadSize <= 0 {
		s.cfg.MaxUploadSize = 32 << 20
	}
	if s.cfg.UploadRateLimit > 0 && s.cfg.UploadRateInterval > 0 {
		if s.limitStore == nil {
			s.memoryStore = ratelimiter.NewMemoryStore()
			s.limitStore = s.memoryStore
		}
		// Both values are positive here, so NewBucket cannot fail.
		s.limiter, _ = ratelimiter.NewBucket(s.limitStore, ratelimiter.Config{
			Capacity:       s.cfg.UploadRateLimit,
			RefillRate:     s.cfg.UploadRateLimit,
			RefillInterval: s.cfg.UploadRateInterval,
		})
	}

	s.errorHandler = handler.NewErrorHandler(s.logger, handler.ErrorHandlerConfig{
		ErrorPage:   views.ErrorPage,
		ErrorToast:  views.ErrorToast,
		ToastTarget: "#" + views.ToastContainerID,
		Translate: func(ctx context.Context, key string) string {
			return s.t(ctx, key, key)
		},
	})
	return s
}

// Handle returns the module router:
//
//	GET  /           the form page
//	POST /translate  submit; SSE patches for DataStar, full page otherwise
//	GET  /languages  selectable languages as JSON
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	var supported []string
	if s.translator != nil {
		supported = s.translator.SupportedLanguages()
	}
	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(supported...))))

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.handleError),
	))

	r.With(s.throttle, limitBody(s.cfg.MaxUploadSize)).Post("/translate", handler.Wrap(s.translate,
		handler.WithBinders[handler.Context, TranslateRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, TranslateRequest](s.handleError),
		handler.WithDecorators(logRequest[TranslateRequest](s.logger, "translate")),
	))

	r.Get("/languages", handler.Wrap(s.languages,
		handler.WithErrorHandler[handler.Context, struct{}](s.handleError),
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.handleError(handler.NewContext(w, r), handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.handleError(handler.NewContext(w, r), handler.ErrMethodNotAllowed)
	})

	return r
}

// TranslateRequest is the multipart submit body.
type TranslateRequest struct {
	Document *multipart.FileHeader `file:"file"`
	Language string                `form:"language"`
	Email    string                `form:"email"`
}

func (s *Service) handleError(ctx handler.Context, err error) {
	s.errorHandler(ctx, httpError(err))
}

// t translates key for the request language, falling back to def.
func (s *Service) t(ctx context.Context, key, def string) string {
	if s.translator == nil {
		return def
	}
	return s.translator.Tdc(ctx, key, def)
}

func (s *Service) copy(ctx context.Context) views.Copy {
	return views.NewCopy(func(key, fallback string) string {
		return s.t(ctx, key, fallback)
	})
}

// Close releases the throttle's background sweep.
func (s *Service) Close() {
	if s.memoryStore != nil {
		s.memoryStore.Close()
	}
}

// throttle limits submits per client address when UploadRateLimit is set.
func (s *Service) throttle(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return ratelimiter.Middleware(s.limiter, ratelimiter.ByClientIP,
		func(w http.ResponseWriter, r *http.Request, res ratelimiter.Result, err error) {
			if err != nil {
				s.handleError(handler.NewContext(w, r), errors.Join(handler.ErrServiceUnavailable, err))
				return
			}
			s.logger.WarnContext(r.Context(), "upload throttled",
				logger.Component("agreement"),
				slog.Duration("retry_after", res.RetryAfter()),
			)
			s.handleError(handler.NewContext(w, r), handler.ErrTooManyRequests)
		},
	)(next)
}

func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

// logRequest logs the outcome of each call of a typed handler.
func logRequest[R any](log *slog.Logger, name string) handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			r := ctx.Request()
			log.DebugContext(ctx, "handling request",
				logger.Handler(name),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Bool("is_datastar", handler.IsDataStar(r)),
			)
			return next(ctx, req)
		}
	}
}
