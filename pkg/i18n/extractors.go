package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// maxLangCodeLength follows the RFC 5646 recommendation.
const maxLangCodeLength = 35

// ExtractorConfig holds configuration for the language extractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor.
type ExtractorOption func(*ExtractorConfig)

func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages restricts results to the given codes.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order, the "lang" cookie, the "lang" query
// parameter and the Accept-Language header, returning the first usable code.
//
// With supported languages configured, candidates are matched against them
// ("hi-IN" becomes "hi") and unsupported ones are skipped. Without, the
// canonical form of the first valid tag is returned.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var matcher *Matcher
	if len(cfg.SupportedLangs) > 0 {
		matcher = NewMatcher(cfg.SupportedLangs...)
	}

	resolve := func(tags ...language.Tag) string {
		if len(tags) == 0 {
			return ""
		}
		if matcher != nil {
			return matcher.Match(tags...)
		}
		return tags[0].String()
	}

	explicit := func(code string) string {
		code = strings.TrimSpace(code)
		if code == "" || len(code) > maxLangCodeLength {
			return ""
		}
		tag, err := language.Parse(code)
		if err != nil {
			return ""
		}
		return resolve(tag)
	}

	return func(r *http.Request) string {
		if cfg.CookieName != "" {
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if lang := explicit(cookie.Value); lang != "" {
					return lang
				}
			}
		}

		if cfg.QueryParamName != "" {
			if lang := explicit(r.URL.Query().Get(cfg.QueryParamName)); lang != "" {
				return lang
			}
		}

		if header := r.Header.Get("Accept-Language"); header != "" {
			return resolve(acceptLanguageTags(header)...)
		}

		return ""
	}
}
