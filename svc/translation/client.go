package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/namanchhaparia06/agreement/pkg/file"
	"github.com/namanchhaparia06/agreement/pkg/logger"
	"github.com/namanchhaparia06/agreement/pkg/requestid"
)

const (
	uploadPath       = "/upload"
	defaultUserAgent = "agreement-upload/1.0"

	// Caps on what is read back from the server.
	maxResponseBytes = 1 << 20
	maxErrorExcerpt  = 200
)

// Form field names expected by the translation server.
const (
	FieldFile     = "file"
	FieldLanguage = "language"
	FieldEmail    = "email"
)

// Submission is a single document sent for translation.
type Submission struct {
	Document file.Source
	Language string
	Email    string
}

// Receipt is the server acknowledgment of an accepted upload.
// The body is kept as raw JSON since its schema is owned by the server.
type Receipt struct {
	StatusCode int
	Body       json.RawMessage
}

// Client uploads documents to the translation server.
// Zero value is not usable; use New to create instances.
type Client struct {
	endpoint  string
	http      *http.Client
	logger    *slog.Logger
	timeout   time.Duration
	userAgent string
}

// New creates a client for the server rooted at baseURL.
// The base may carry a path prefix; "/upload" is appended to it.
func New(baseURL string, opts ...Option) (*Client, error) {
	endpoint, err := uploadEndpoint(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		endpoint:  endpoint,
		http:      &http.Client{},
		logger:    slog.New(slog.DiscardHandler),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the absolute upload URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Ping checks that the server accepts TCP connections. It does not send an
// HTTP request, so it never creates an upload.
func (c *Client) Ping(ctx context.Context) error {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	host := u.Host
	if u.Port() == "" {
		port := "80"
		if u.Scheme == "https" {
			port = "443"
		}
		host = net.JoinHostPort(u.Hostname(), port)
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", host)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return conn.Close()
}

// Upload sends the submission as a single multipart POST.
// It never retries.
func (c *Client) Upload(ctx context.Context, sub Submission) (Receipt, error) {
	if sub.Document == nil {
		return Receipt{}, fmt.Errorf("%w: document is required", ErrInvalidSubmission)
	}

	body, contentType, err := encodeSubmission(sub)
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		_ = body.Close()
		return Receipt{}, fmt.Errorf("%w: failed to create request: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	requestid.Propagate(ctx, req.Header)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "upload request failed",
			logger.URL(c.endpoint),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		return Receipt{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: failed to read response: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WarnContext(ctx, "upload rejected",
			logger.URL(c.endpoint),
			logger.StatusCode(resp.StatusCode),
			logger.Duration(time.Since(start)),
		)
		return Receipt{}, &StatusError{Code: resp.StatusCode, Body: excerpt(raw)}
	}

	if !json.Valid(raw) {
		return Receipt{}, fmt.Errorf("%w: response is not valid JSON", ErrTransport)
	}

	c.logger.DebugContext(ctx, "upload acknowledged",
		logger.StatusCode(resp.StatusCode),
		logger.Duration(time.Since(start)),
		slog.String("receipt", string(raw)),
	)

	return Receipt{StatusCode: resp.StatusCode, Body: json.RawMessage(raw)}, nil
}

// encodeSubmission streams the parts in the order file, language, email.
// The document is copied straight into the request body through a pipe,
// so it is never held in memory as a whole.
func encodeSubmission(sub Submission) (io.ReadCloser, string, error) {
	ct, err := file.DetectContentType(sub.Document)
	if err != nil {
		return nil, "", err
	}

	src, err := sub.Document.Open()
	if err != nil {
		return nil, "", err
	}

	pr, pw := io.Pipe()
	w := multipart.NewWriter(pw)

	go func() {
		defer func() { _ = src.Close() }()
		pw.CloseWithError(writeParts(w, sub, ct, src))
	}()

	return pr, w.FormDataContentType(), nil
}

func writeParts(w *multipart.Writer, sub Submission, contentType string, src io.Reader) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		FieldFile, escapeQuotes(sub.Document.Name())))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("%w: %w", file.ErrFailedToReadFile, err)
	}
	if err := w.WriteField(FieldLanguage, sub.Language); err != nil {
		return fmt.Errorf("failed to write language field: %w", err)
	}
	if err := w.WriteField(FieldEmail, sub.Email); err != nil {
		return fmt.Errorf("failed to write email field: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return nil
}

func uploadEndpoint(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return "", fmt.Errorf("%w: URL is required", ErrInvalidBaseURL)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidBaseURL)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: host is required", ErrInvalidBaseURL)
	}

	u.Path = strings.TrimRight(u.Path, "/") + uploadPath
	u.RawPath = ""
	return u.String(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// excerpt flattens the body to one line so it is safe to log.
// The cut never splits a UTF-8 sequence.
func excerpt(body []byte) string {
	s := strings.TrimSpace(strings.ReplaceAll(string(body), "\n", " "))
	if len(s) <= maxErrorExcerpt {
		return s
	}
	n := maxErrorExcerpt
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
