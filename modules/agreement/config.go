package agreement

import (
	"log/slog"
	"time"

	"github.com/namanchhaparia06/agreement/pkg/validator"
	"github.com/namanchhaparia06/agreement/svc/translation"
)

// Config is loaded from the environment with config.Load.
type Config struct {
	// ServerURL is the translation server base; uploads go to {ServerURL}/upload.
	ServerURL string `env:"SERVER_URL,required"`
	// UploadTimeout bounds each upload. Zero means no limit.
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT" envDefault:"0s"`
	// MaxUploadSize caps the submit request body in bytes.
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"33554432"`
	// UploadRateLimit is the number of submits a client address may make per
	// UploadRateInterval. Zero disables throttling.
	UploadRateLimit    int           `env:"UPLOAD_RATE_LIMIT" envDefault:"10"`
	UploadRateInterval time.Duration `env:"UPLOAD_RATE_INTERVAL" envDefault:"1m"`
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	return validator.Apply(
		validator.Required("SERVER_URL", c.ServerURL),
		validator.ValidURLWithScheme("SERVER_URL", c.ServerURL, []string{"http", "https"}),
		validator.NonNegative("UPLOAD_TIMEOUT", c.UploadTimeout),
		validator.Positive("MAX_UPLOAD_SIZE", c.MaxUploadSize),
		validator.NonNegative("UPLOAD_RATE_LIMIT", c.UploadRateLimit),
		validator.When(c.UploadRateLimit > 0, validator.Positive("UPLOAD_RATE_INTERVAL", c.UploadRateInterval)),
	)
}

// NewClient creates the translation client described by the config.
func (c Config) NewClient(log *slog.Logger) (*translation.Client, error) {
	return translation.New(c.ServerURL,
		translation.WithTimeout(c.UploadTimeout),
		translation.WithLogger(log),
	)
}
