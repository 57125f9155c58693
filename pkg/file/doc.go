// Package file provides document sources for the upload form.
//
// A Source is anything the user can pick in a file picker: a part of an
// incoming multipart request or a file on the local disk. Sources are opened
// lazily, so the form can hold a reference for as long as the page lives and
// only read the content when it is actually submitted.
//
// # Usage
//
//	// From an HTTP request
//	fh := r.MultipartForm.File["file"][0]
//	src, err := file.FromHeader(fh)
//
//	// From disk (CLI)
//	src, err := file.FromPath("./contract.pdf")
//
//	ct, err := file.DetectContentType(src) // "application/pdf"
//
// # Security
//
// Names reported by Source.Name are always passed through SanitizeFilename so
// that a client-supplied name like "../../etc/passwd" never reaches the
// outbound request or a log line as a path.
package file
