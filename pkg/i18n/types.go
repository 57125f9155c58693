package i18n

import (
	"context"
	"net/http"
)

// LangExtractor extracts the preferred language code from an HTTP request.
// An empty result means no preference was found.
type LangExtractor func(r *http.Request) string

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// Parser turns the content of one translation file into translations keyed
// by language code.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)
	// SupportsFileExtension accepts the extension with or without a leading dot.
	SupportsFileExtension(ext string) bool
}
