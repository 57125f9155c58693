package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/namanchhaparia06/agreement/handler"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		err := handler.NewValidationError()
		assert.Equal(t, "Validation failed", err.Error())
		assert.True(t, err.IsEmpty())
	})

	t.Run("single field", func(t *testing.T) {
		t.Parallel()
		err := handler.NewValidationError()
		err.Add("language", "unsupported language")

		assert.Equal(t, "validation error: language: unsupported language", err.Error())
		assert.False(t, err.IsEmpty())
		assert.True(t, err.Has("language"))
		assert.False(t, err.Has("email"))
		assert.Equal(t, "unsupported language", err.Get("language"))
	})

	t.Run("fields are listed in name order", func(t *testing.T) {
		t.Parallel()
		err := handler.NewValidationError()
		err.Add("language", "unsupported language")
		err.Add("email", "required")

		assert.Equal(t, "validation error: email: required, language: unsupported language", err.Error())
	})

	t.Run("keeps every message for a field", func(t *testing.T) {
		t.Parallel()
		err := handler.NewValidationError()
		err.Add("file", "required")
		err.Add("file", "must be a PDF")

		assert.Contains(t, err.Error(), "file: required")
		assert.NotContains(t, err.Error(), "must be a PDF")
		assert.Equal(t, []string{"required", "must be a PDF"}, err["file"])
	})
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	err := handler.NewHTTPError(http.StatusConflict, "upload.errors.submit_in_progress")
	assert.Equal(t, "upload.errors.submit_in_progress", err.Error())
	assert.Equal(t, http.StatusConflict, err.Code)

	var target handler.HTTPError
	wrapped := fmt.Errorf("translate: %w", handler.ErrRequestEntityTooLarge)
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, http.StatusRequestEntityTooLarge, target.Code)
}
