package translation

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidBaseURL    = errors.New("translation.errors.invalid_base_url")
	ErrInvalidSubmission = errors.New("translation.errors.invalid_submission")
	ErrServerRejected    = errors.New("translation.errors.server_rejected")
	ErrTransport         = errors.New("translation.errors.transport")
)

// StatusError is returned when the server answers outside the 2xx range.
type StatusError struct {
	Code int
	// Body is a trimmed, single-line excerpt of the response body.
	Body string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("translation server returned %d %s", e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Is makes errors.Is(err, ErrServerRejected) hold for every StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrServerRejected
}
