package agreement

import (
	"errors"
	"net/http"

	"github.com/namanchhaparia06/agreement/handler"
	"github.com/namanchhaparia06/agreement/pkg/binder"
)

// ErrInvalidDocument is returned when the uploaded part cannot be opened.
var ErrInvalidDocument = handler.NewHTTPError(http.StatusBadRequest, "upload.errors.invalid_document")

// httpError attaches an HTTP status to binder failures so the error
// handler renders them as client errors.
func httpError(err error) error {
	switch {
	case errors.Is(err, binder.ErrRequestTooLarge):
		return errors.Join(handler.ErrRequestEntityTooLarge, err)
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return errors.Join(handler.ErrUnsupportedMediaType, err)
	case errors.Is(err, binder.ErrInvalidForm):
		return errors.Join(handler.ErrBadRequest, err)
	default:
		return err
	}
}
