package handler_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namanchhaparia06/agreement/handler"
	"github.com/namanchhaparia06/agreement/pkg/environment"
	"github.com/namanchhaparia06/agreement/pkg/logger"
	"github.com/namanchhaparia06/agreement/pkg/requestid"
)

func stubErrorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<main>%d %s (%s)</main>", p.StatusCode, p.Error, p.RetryURL)
		return err
	})
}

func stubErrorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="toast toast-%s">%s</div>`, p.Type, p.Message)
		return err
	})
}

func serveError(h handler.ErrorHandler[handler.Context], r *http.Request, err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(handler.NewContext(w, r), err)
	return w
}

func datastarRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set("Accept", "text/event-stream")
	return r
}

func TestNewErrorHandler_Page(t *testing.T) {
	t.Parallel()

	h := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{ErrorPage: stubErrorPage})

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody []string
	}{
		{
			name:     "unclassified error hides details",
			err:      errors.New("dial tcp: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: []string{"An error occurred processing your request"},
		},
		{
			name:     "http error uses its code and key",
			err:      handler.ErrRequestEntityTooLarge,
			wantCode: http.StatusRequestEntityTooLarge,
			wantBody: []string{"http.error.request_entity_too_large"},
		},
		{
			name:     "wrapped http error",
			err:      fmt.Errorf("bind: %w", handler.ErrBadRequest),
			wantCode: http.StatusBadRequest,
			wantBody: []string{"http.error.bad_request"},
		},
		{
			name: "validation error lists every message",
			err: handler.ValidationError{
				"language": {"unsupported language"},
				"file":     {"required", "must be a PDF"},
			},
			wantCode: http.StatusBadRequest,
			wantBody: []string{"file: required; file: must be a PDF; language: unsupported language"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serveError(h, httptest.NewRequest(http.MethodPost, "/translate", nil), tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			for _, s := range tt.wantBody {
				assert.Contains(t, w.Body.String(), s)
			}
			assert.Contains(t, w.Body.String(), "(/translate)")
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

func TestNewErrorHandler_Development(t *testing.T) {
	t.Parallel()

	h := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{ErrorPage: stubErrorPage})
	request := func(env environment.Environment) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/translate", nil)
		return r.WithContext(environment.WithContext(r.Context(), env))
	}

	w := serveError(h, request(environment.Development), errors.New("dial tcp: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "dial tcp: connection refused")

	w = serveError(h, request(environment.Production), errors.New("dial tcp: connection refused"))
	assert.NotContains(t, w.Body.String(), "connection refused")

	w = serveError(h, request(environment.Development), handler.ErrBadGateway)
	assert.Contains(t, w.Body.String(), "http.error.bad_gateway")
}

func TestNewErrorHandler_Toast(t *testing.T) {
	t.Parallel()

	h := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{ErrorToast: stubErrorToast})

	t.Run("client error is a warning", func(t *testing.T) {
		t.Parallel()
		w := serveError(h, datastarRequest(http.MethodPost, "/translate"),
			handler.ValidationError{"language": {"unsupported language"}})

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "event: datastar-patch-elements")
		assert.Contains(t, body, "selector #toast-container")
		assert.Contains(t, body, "mode prepend")
		assert.Contains(t, body, "toast-warning")
		assert.Contains(t, body, "language: unsupported language")
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()
		w := serveError(h, datastarRequest(http.MethodPost, "/translate"), handler.ErrBadGateway)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "toast-error")
		assert.Contains(t, w.Body.String(), "http.error.bad_gateway")
	})

	t.Run("custom target and mode", func(t *testing.T) {
		t.Parallel()
		custom := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{
			ErrorToast:  stubErrorToast,
			ToastTarget: "#alert",
			ToastMode:   handler.PatchInner,
		})
		w := serveError(custom, datastarRequest(http.MethodPost, "/translate"), errors.New("boom"))

		assert.Contains(t, w.Body.String(), "selector #alert")
		assert.Contains(t, w.Body.String(), "mode inner")
	})
}

func TestNewErrorHandler_Translate(t *testing.T) {
	t.Parallel()

	h := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{
		ErrorPage: stubErrorPage,
		Translate: func(_ context.Context, key string) string {
			if key == handler.ErrNotFound.Key {
				return "Page not found"
			}
			return key
		},
	})

	w := serveError(h, httptest.NewRequest(http.MethodGet, "/missing", nil), handler.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestNewErrorHandler_NoComponents(t *testing.T) {
	t.Parallel()

	h := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{})

	t.Run("plain request falls back to text", func(t *testing.T) {
		t.Parallel()
		w := serveError(h, httptest.NewRequest(http.MethodGet, "/", nil), handler.ErrServiceUnavailable)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "http.error.service_unavailable")
	})

	t.Run("datastar request writes nothing", func(t *testing.T) {
		t.Parallel()
		w := serveError(h, datastarRequest(http.MethodGet, "/"), errors.New("boom"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestNewErrorHandler_Logs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
	h := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{ErrorPage: stubErrorPage})

	r := httptest.NewRequest(http.MethodPost, "/translate", nil)
	r = r.WithContext(requestid.WithContext(r.Context(), "req-42"))

	serveError(h, r, handler.ErrBadRequest)
	serveError(h, r, errors.New("boom"))

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"path":"/translate"`)
}
