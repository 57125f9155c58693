package file

import "errors"

var (
	ErrNilFileHeader = errors.New("file header is nil")
	ErrEmptyPath     = errors.New("file path is empty")
	ErrIsDirectory   = errors.New("path is a directory")
	ErrFileNotFound  = errors.New("file not found")

	ErrFailedToOpenFile       = errors.New("failed to open file")
	ErrFailedToReadFile       = errors.New("failed to read file")
	ErrFailedToStatPath       = errors.New("failed to stat path")
	ErrFailedToDetectMIMEType = errors.New("failed to detect MIME type")
)
