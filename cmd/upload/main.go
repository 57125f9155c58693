// Command upload submits a PDF to the translation server from the terminal,
// with the same validation and messages as the web form.
//
//	upload -file agreement.pdf -email user@example.com -language hi
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/namanchhaparia06/agreement/modules/agreement"
	"github.com/namanchhaparia06/agreement/pkg/config"
	"github.com/namanchhaparia06/agreement/pkg/file"
	"github.com/namanchhaparia06/agreement/pkg/i18n"
	"github.com/namanchhaparia06/agreement/pkg/logger"
	"github.com/namanchhaparia06/agreement/svc/upload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	path     string
	email    string
	language string
	uiLang   string
	server   string
	timeout  time.Duration
	envFile  string
	list     bool
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.path, "file", "", "PDF document to upload")
	fs.StringVar(&o.email, "email", "", "address that receives the translated document")
	fs.StringVar(&o.language, "language", upload.DefaultLanguage, "target language code")
	fs.StringVar(&o.uiLang, "ui-lang", i18n.DefaultLanguage, "language of printed messages")
	fs.StringVar(&o.server, "server", "", "translation server base URL (overrides SERVER_URL)")
	fs.DurationVar(&o.timeout, "timeout", 0, "upload timeout (overrides UPLOAD_TIMEOUT)")
	fs.StringVar(&o.envFile, "env-file", "", "path to a .env file")
	fs.BoolVar(&o.list, "list-languages", false, "print the supported languages and exit")
	fs.BoolVar(&o.verbose, "v", false, "log the upload trace to stderr")
	return o, fs.Parse(args)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if o.list {
		for _, l := range upload.Languages() {
			fmt.Fprintf(stdout, "%-3s %s\n", l.Code, l.Label)
		}
		return 0
	}

	log := slog.New(slog.DiscardHandler)
	if o.verbose {
		log = logger.New(logger.WithTextFormatter(), logger.WithOutput(stderr), logger.WithLevel(slog.LevelDebug))
	}

	cfg, err := loadConfig(o)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	code, ok := upload.NormalizeLanguage(o.language)
	if !ok {
		fmt.Fprintf(stderr, "unsupported language %q, see -list-languages\n", o.language)
		return 2
	}

	translator, err := agreement.NewTranslator(ctx, log)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	client, err := cfg.NewClient(log)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	notifier := upload.NotifierFunc(func(_ context.Context, n upload.Notification) {
		out := stdout
		if n.Kind != upload.KindSuccess {
			out = stderr
		}
		fmt.Fprintln(out, translator.Td(o.uiLang, n.Key, n.Message))
	})

	form := upload.NewForm(client, notifier, upload.WithLogger(log), upload.WithLanguage(code))
	form.SetEmail(o.email)
	if o.path != "" {
		doc, err := file.FromPath(o.path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		form.SelectFile(doc)
	}

	if err := form.Submit(ctx); err != nil {
		if errors.Is(err, upload.ErrMissingFile) || errors.Is(err, upload.ErrMissingEmail) {
			return 2
		}
		log.Debug("upload failed", logger.Error(err))
		return 1
	}
	return 0
}

// loadConfig reads SERVER_URL and UPLOAD_TIMEOUT from the environment and
// applies flag overrides.
func loadConfig(o options) (agreement.Config, error) {
	if o.envFile != "" {
		if err := config.LoadEnv(o.envFile); err != nil {
			return agreement.Config{}, err
		}
	}
	if o.server != "" {
		if err := os.Setenv("SERVER_URL", o.server); err != nil {
			return agreement.Config{}, err
		}
	}

	var cfg agreement.Config
	if err := config.Load(&cfg); err != nil {
		return agreement.Config{}, err
	}
	if o.timeout > 0 {
		cfg.UploadTimeout = o.timeout
	}
	return cfg, cfg.Validate()
}
