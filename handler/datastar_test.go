package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/namanchhaparia06/agreement/handler"
)

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		query    string
		expected bool
	}{
		{name: "event stream accept", headers: map[string]string{"Accept": "text/event-stream"}, expected: true},
		{name: "event stream among others", headers: map[string]string{"Accept": "text/html, text/event-stream, */*"}, expected: true},
		{name: "signals query", query: `?datastar={"email":""}`, expected: true},
		{name: "datastar content type", headers: map[string]string{"Content-Type": "application/x-datastar"}, expected: true},
		{name: "browser navigation", headers: map[string]string{"Accept": "text/html"}, expected: false},
		{name: "multipart form post", headers: map[string]string{"Content-Type": "multipart/form-data; boundary=x"}, expected: false},
		{name: "no headers", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/translate"+tt.query, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, handler.IsDataStar(req))
		})
	}
}

func TestIsDataStar_MediaTypeParams(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/translate", nil)
	req.Header.Set("Accept", "text/event-stream;q=0.9")
	assert.True(t, handler.IsDataStar(req))

	req = httptest.NewRequest(http.MethodPost, "/translate", nil)
	req.Header.Set("Accept", "text/event-streaming")
	assert.False(t, handler.IsDataStar(req))
}
