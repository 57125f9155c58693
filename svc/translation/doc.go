// Package translation is the HTTP client for the remote translation server.
//
// The server accepts a PDF together with the target language and the email
// address the translated document should be delivered to:
//
//	POST {base}/upload
//	Content-Type: multipart/form-data
//
//	file     - the document bytes, original file name
//	language - target language code, e.g. "hi"
//	email    - delivery address
//
// Any 2xx response carrying a JSON body is an acknowledgment; its content is
// returned untouched as a Receipt. Failures are classified into two kinds:
//
//   - ErrServerRejected: the server answered with a non-2xx status. The
//     concrete *StatusError carries the code.
//   - ErrTransport: the request never completed, or the 2xx body could not be
//     read or decoded as JSON.
//
// Usage:
//
//	client, err := translation.New(cfg.ServerURL, translation.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	receipt, err := client.Upload(ctx, translation.Submission{
//	    Document: src,
//	    Language: "hi",
//	    Email:    "user@example.com",
//	})
//	switch {
//	case errors.Is(err, translation.ErrServerRejected):
//	case errors.Is(err, translation.ErrTransport):
//	}
package translation
