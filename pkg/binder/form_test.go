package binder_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namanchhaparia06/agreement/pkg/binder"
)

type translateRequest struct {
	Document *multipart.FileHeader `file:"file"`
	Language string                `form:"language"`
	Email    string                `form:"email"`
	Internal string                `form:"-"`
}

func multipartRequest(t *testing.T, fields map[string]string, files map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, content := range files {
		part, err := w.CreateFormFile("file", name)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	r := httptest.NewRequest(http.MethodPost, "/translate", body)
	r.Header.Set("Content-Type", w.FormDataContentType())
	return r
}

func TestForm_Multipart(t *testing.T) {
	t.Parallel()

	t.Run("binds file and fields", func(t *testing.T) {
		t.Parallel()
		r := multipartRequest(t,
			map[string]string{"language": "hi", "email": "user@example.com"},
			map[string]string{"lease.pdf": "%PDF-1.4"},
		)

		var req translateRequest
		require.NoError(t, binder.Form()(r, &req))

		require.NotNil(t, req.Document)
		assert.Equal(t, "lease.pdf", req.Document.Filename)
		assert.Equal(t, int64(len("%PDF-1.4")), req.Document.Size)
		assert.Equal(t, "hi", req.Language)
		assert.Equal(t, "user@example.com", req.Email)
		assert.Empty(t, req.Internal)
	})

	t.Run("missing file leaves nil", func(t *testing.T) {
		t.Parallel()
		r := multipartRequest(t, map[string]string{"email": "user@example.com"}, nil)

		var req translateRequest
		require.NoError(t, binder.Form()(r, &req))
		assert.Nil(t, req.Document)
	})

	t.Run("sanitizes file names", func(t *testing.T) {
		t.Parallel()
		r := multipartRequest(t, nil, map[string]string{"../../etc/lease.pdf": "x"})

		var req translateRequest
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, "lease.pdf", req.Document.Filename)
	})

	t.Run("multiple files", func(t *testing.T) {
		t.Parallel()
		body := &bytes.Buffer{}
		w := multipart.NewWriter(body)
		for _, name := range []string{"a.pdf", "b.pdf"} {
			part, err := w.CreateFormFile("file", name)
			require.NoError(t, err)
			_, _ = part.Write([]byte(name))
		}
		require.NoError(t, w.Close())
		r := httptest.NewRequest(http.MethodPost, "/", body)
		r.Header.Set("Content-Type", w.FormDataContentType())

		var req struct {
			Files []*multipart.FileHeader `file:"file"`
		}
		require.NoError(t, binder.Form()(r, &req))
		require.Len(t, req.Files, 2)
		assert.Equal(t, "b.pdf", req.Files[1].Filename)
	})

	t.Run("body over limit", func(t *testing.T) {
		t.Parallel()
		r := multipartRequest(t, nil, map[string]string{"big.pdf": strings.Repeat("x", 4096)})
		r.Body = http.MaxBytesReader(httptest.NewRecorder(), r.Body, 1024)

		var req translateRequest
		err := binder.Form(binder.WithMaxMemory(512))(r, &req)
		assert.ErrorIs(t, err, binder.ErrRequestTooLarge)
	})

	t.Run("invalid boundary", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		r.Header.Set("Content-Type", `multipart/form-data; boundary="bad<>"`)

		var req translateRequest
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrInvalidForm)
	})
}

func TestForm_URLEncoded(t *testing.T) {
	t.Parallel()

	type settings struct {
		Language string   `form:"language"`
		Count    int      `form:"count"`
		Ratio    *float64 `form:"ratio"`
		Enabled  bool     `form:"enabled"`
		Tags     []string `form:"tags"`
	}

	newReq := func(body string) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
		return r
	}

	t.Run("scalar and slice fields", func(t *testing.T) {
		t.Parallel()
		var s settings
		require.NoError(t, binder.Form()(newReq("language=ta&count=3&ratio=0.5&enabled=on&tags=a,b&tags=c"), &s))

		assert.Equal(t, "ta", s.Language)
		assert.Equal(t, 3, s.Count)
		require.NotNil(t, s.Ratio)
		assert.InDelta(t, 0.5, *s.Ratio, 1e-9)
		assert.True(t, s.Enabled)
		assert.Equal(t, []string{"a", "b", "c"}, s.Tags)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		var s settings
		assert.ErrorIs(t, binder.Form()(newReq("count=many"), &s), binder.ErrInvalidForm)
	})

	t.Run("target must be a struct pointer", func(t *testing.T) {
		t.Parallel()
		var s settings
		assert.ErrorIs(t, binder.Form()(newReq("count=1"), s), binder.ErrInvalidForm)
	})
}

func TestForm_ContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		want        error
	}{
		{name: "missing", contentType: "", want: binder.ErrMissingContentType},
		{name: "json", contentType: "application/json", want: binder.ErrUnsupportedMediaType},
		{name: "malformed", contentType: "multipart/form-data; boundary", want: binder.ErrInvalidForm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}
			var req translateRequest
			assert.ErrorIs(t, binder.Form()(r, &req), tt.want)
		})
	}
}
