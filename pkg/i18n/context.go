package i18n

import (
	"context"
	"net/http"
)

type localeKey struct{}

// SetLocale returns a copy of ctx carrying lang.
func SetLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeKey{}, lang)
}

// GetLocale returns the request language, or DefaultLanguage when none is set.
func GetLocale(ctx context.Context) string {
	if lang, ok := ctx.Value(localeKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLanguage
}

// Middleware resolves the UI language with extract and stores it with
// SetLocale. A nil extract uses DefaultLangExtractor().
func Middleware(extract LangExtractor) func(http.Handler) http.Handler {
	if extract == nil {
		extract = DefaultLangExtractor()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), extract(r))))
		})
	}
}
