// Command server serves the document agreement form and forwards submitted
// documents to the translation server.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/namanchhaparia06/agreement/modules/agreement"
	"github.com/namanchhaparia06/agreement/modules/ops"
	"github.com/namanchhaparia06/agreement/pkg/clientip"
	"github.com/namanchhaparia06/agreement/pkg/config"
	"github.com/namanchhaparia06/agreement/pkg/environment"
	"github.com/namanchhaparia06/agreement/pkg/httpserver"
	"github.com/namanchhaparia06/agreement/pkg/logger"
	"github.com/namanchhaparia06/agreement/pkg/ratelimiter"
	"github.com/namanchhaparia06/agreement/pkg/redis"
	"github.com/namanchhaparia06/agreement/pkg/requestid"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"agreement"`
	LogLevel string `env:"LOG_LEVEL"`
}

func main() {
	envFile := flag.String("env-file", "", "path to a .env file")
	flag.Parse()

	if *envFile != "" {
		config.MustLoadEnv(*envFile)
	}

	var app appConfig
	config.MustLoad(&app)

	env := environment.Parse(app.Env)
	levelVar := new(slog.LevelVar)
	logOpts := []logger.Option{
		logger.WithEnvironment(env.String(), app.Name),
		logger.WithLevelVar(levelVar),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	}
	if app.LogLevel != "" {
		level, err := logger.ParseLevel(app.LogLevel)
		if err != nil {
			slog.Error("invalid LOG_LEVEL", logger.Error(err))
			os.Exit(1)
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), app.Name, env, levelVar, log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, name string, env environment.Environment, levelVar *slog.LevelVar, log *slog.Logger) error {
	var (
		agreementCfg agreement.Config
		httpCfg      httpserver.Config
		redisCfg     redis.Config
	)
	if err := config.Load(&agreementCfg); err != nil {
		return err
	}
	if err := agreementCfg.Validate(); err != nil {
		return err
	}
	if err := config.Load(&httpCfg); err != nil {
		return err
	}
	if err := config.Load(&redisCfg); err != nil {
		return err
	}

	translator, err := agreement.NewTranslator(ctx, log)
	if err != nil {
		return err
	}
	client, err := agreementCfg.NewClient(log)
	if err != nil {
		return err
	}

	checks := []httpserver.HealthCheck{withTimeout(client.Ping)}
	formOpts := []agreement.Option{
		agreement.WithLogger(log),
		agreement.WithTranslator(translator),
	}
	if redisCfg.Enabled() {
		rdb, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer rdb.Close()
		formOpts = append(formOpts, agreement.WithRateLimitStore(ratelimiter.NewRedisStore(rdb, name+":ratelimit:")))
		checks = append(checks, withTimeout(redis.Healthcheck(rdb)))
		log.Info("upload throttle shared through redis")
	}

	forms := agreement.NewService(agreementCfg, client, formOpts...)
	defer forms.Close()
	probes := ops.NewService(levelVar,
		ops.WithLogger(log),
		ops.WithReadinessChecks(checks...),
	)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(env),
		middleware.Recoverer,
	)
	r.Mount("/ops", probes.Handle())
	r.Mount("/", forms.Handle())

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("forwarding uploads", logger.URL(client.Endpoint()))
		}),
	)
	return srv.Run(ctx, r)
}

// withTimeout bounds a readiness check to two seconds.
func withTimeout(check func(context.Context) error) httpserver.HealthCheck {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return check(ctx)
	}
}
