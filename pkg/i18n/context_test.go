package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/namanchhaparia06/agreement/pkg/i18n"
)

func localeOf(t *testing.T, mw func(http.Handler) http.Handler, r *http.Request) string {
	t.Helper()
	var got string
	mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	})).ServeHTTP(httptest.NewRecorder(), r)
	return got
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("default extractor", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "hi-IN,hi;q=0.9")
		assert.Equal(t, "hi-IN", localeOf(t, i18n.Middleware(nil), r))
	})

	t.Run("empty extraction falls back", func(t *testing.T) {
		t.Parallel()
		mw := i18n.Middleware(func(*http.Request) string { return "" })
		assert.Equal(t, i18n.DefaultLanguage, localeOf(t, mw, httptest.NewRequest(http.MethodGet, "/", nil)))
	})

	t.Run("custom extractor", func(t *testing.T) {
		t.Parallel()
		mw := i18n.Middleware(func(*http.Request) string { return "ta" })
		assert.Equal(t, "ta", localeOf(t, mw, httptest.NewRequest(http.MethodGet, "/", nil)))
	})
}

func TestDefaultLangExtractor(t *testing.T) {
	t.Parallel()

	extract := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("en", "hi"))

	tests := []struct {
		name   string
		target string
		cookie string
		accept string
		want   string
	}{
		{name: "cookie first", target: "/?lang=en", cookie: "hi", accept: "en", want: "hi"},
		{name: "query second", target: "/?lang=hi", accept: "en", want: "hi"},
		{name: "query regional", target: "/?lang=HI-in", want: "hi"},
		{name: "unsupported cookie skipped", target: "/?lang=hi", cookie: "fr", want: "hi"},
		{name: "accept language", target: "/", accept: "fr;q=0.9, hi;q=0.8", want: "hi"},
		{name: "invalid query skipped", target: "/?lang=%21%21", accept: "hi", want: "hi"},
		{name: "nothing", target: "/", want: ""},
		{name: "nothing supported", target: "/", accept: "fr", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			assert.Equal(t, tt.want, extract(r))
		})
	}

	t.Run("custom names", func(t *testing.T) {
		t.Parallel()
		extract := i18n.DefaultLangExtractor(i18n.WithCookieName("locale"), i18n.WithQueryParamName("l"))
		r := httptest.NewRequest(http.MethodGet, "/?lang=hi&l=ta", nil)
		assert.Equal(t, "ta", extract(r))

		r = httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "locale", Value: "mr"})
		assert.Equal(t, "mr", extract(r))
	})
}
