package upload

import "errors"

var (
	ErrMissingFile      = errors.New("upload.errors.missing_file")
	ErrMissingEmail     = errors.New("upload.errors.missing_email")
	ErrSubmitInProgress = errors.New("upload.errors.submit_in_progress")
)
