package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// PDFMIMEType is the content type reported for PDF documents.
const PDFMIMEType = "application/pdf"

// sniffLen is the maximum number of bytes http.DetectContentType inspects.
const sniffLen = 512

// Source is a document selected by the user.
type Source interface {
	// Name is the sanitized display name of the document.
	Name() string
	// Size is the document size in bytes, or 0 when unknown.
	Size() int64
	// Open returns a fresh reader over the document content.
	Open() (io.ReadCloser, error)
}

type headerSource struct {
	fh   *multipart.FileHeader
	name string
}

// FromHeader wraps an uploaded multipart part.
func FromHeader(fh *multipart.FileHeader) (Source, error) {
	if fh == nil {
		return nil, ErrNilFileHeader
	}
	return &headerSource{fh: fh, name: SanitizeFilename(fh.Filename)}, nil
}

func (s *headerSource) Name() string { return s.name }
func (s *headerSource) Size() int64  { return s.fh.Size }

func (s *headerSource) Open() (io.ReadCloser, error) {
	f, err := s.fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	return f, nil
}

type pathSource struct {
	path string
	name string
	size int64
}

// FromPath references a regular file on disk. The file must exist when
// FromPath is called; it is reopened on every Open.
func FromPath(path string) (Source, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	return &pathSource{
		path: path,
		name: SanitizeFilename(info.Name()),
		size: info.Size(),
	}, nil
}

func (s *pathSource) Name() string { return s.name }
func (s *pathSource) Size() int64  { return s.size }

func (s *pathSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	return f, nil
}

// DetectContentType sniffs the first bytes of the document.
// Falls back to the extension when the content is not recognised.
func DetectContentType(src Source) (string, error) {
	if src == nil {
		return "", ErrFailedToDetectMIMEType
	}

	r, err := src.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = r.Close() }()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	detected := http.DetectContentType(buf[:n])
	if detected != "application/octet-stream" {
		mediaType, _, err := mime.ParseMediaType(detected)
		if err == nil {
			return mediaType, nil
		}
		return detected, nil
	}

	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(src.Name()))); byExt != "" {
		mediaType, _, err := mime.ParseMediaType(byExt)
		if err == nil {
			return mediaType, nil
		}
	}
	return detected, nil
}

// IsPDF reports whether the document looks like a PDF, by content or by extension.
func IsPDF(src Source) bool {
	if src == nil {
		return false
	}
	if ct, err := DetectContentType(src); err == nil && ct == PDFMIMEType {
		return true
	}
	return strings.EqualFold(filepath.Ext(src.Name()), ".pdf")
}

// SanitizeFilename strips path components and control or reserved characters
// from a client supplied name. Empty names and "." or ".." become "unnamed".
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd") // Returns "passwd"
//	safe = file.SanitizeFilename("C:\\Windows\\file.txt") // Returns "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}
