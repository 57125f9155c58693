package agreement

import (
	"context"
	"embed"
	"log/slog"

	"github.com/namanchhaparia06/agreement/pkg/i18n"
)

//go:embed translations/*.yaml
var translationsFS embed.FS

// NewTranslator loads the bundled UI translations.
func NewTranslator(ctx context.Context, log *slog.Logger) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), translationsFS, "translations"),
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
}
