package upload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/namanchhaparia06/agreement/pkg/file"
	"github.com/namanchhaparia06/agreement/pkg/logger"
	"github.com/namanchhaparia06/agreement/svc/translation"
)

// NoFileSelected is the display name shown before a document is picked.
const NoFileSelected = "No file selected"

// Uploader sends a submission to the translation server.
// *translation.Client satisfies it.
type Uploader interface {
	Upload(ctx context.Context, sub translation.Submission) (translation.Receipt, error)
}

// State is a snapshot of the form.
type State struct {
	File       file.Source
	FileName   string
	Language   string
	Email      string
	Submitting bool
}

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger used for the developer trace.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithLanguage overrides the initially selected language code.
func WithLanguage(code string) Option {
	return func(f *Form) {
		if code != "" {
			f.state.Language = code
		}
	}
}

// Form holds the state of one document agreement form and submits it.
// A Form allows a single submission in flight; it is safe for concurrent use.
type Form struct {
	mu       sync.Mutex
	state    State
	uploader Uploader
	notifier Notifier
	logger   *slog.Logger
}

// NewForm creates a form with no file, an empty email and DefaultLanguage selected.
func NewForm(uploader Uploader, notifier Notifier, opts ...Option) *Form {
	if notifier == nil {
		notifier = NotifierFunc(func(context.Context, Notification) {})
	}
	f := &Form{
		state: State{
			FileName: NoFileSelected,
			Language: DefaultLanguage,
		},
		uploader: uploader,
		notifier: notifier,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SelectFile stores the picked document. A nil document, as produced by a
// dismissed picker, leaves the current selection untouched.
func (f *Form) SelectFile(doc file.Source) {
	if doc == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.File = doc
	f.state.FileName = doc.Name()
}

func (f *Form) SetEmail(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Email = value
}

func (f *Form) SetLanguage(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Language = code
}

// State returns a snapshot of the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// CanSubmit reports whether the submit control should be enabled.
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.File != nil && !f.state.Submitting
}

// Languages returns the selectable languages in display order.
func (f *Form) Languages() []Language {
	return Languages()
}

// Submit validates the form and uploads the document once.
//
// Exactly one notification is delivered per call, except when a submission
// is already in flight: then ErrSubmitInProgress is returned and nothing is
// sent or shown. Missing input yields an alert and ErrMissingFile or
// ErrMissingEmail without any request. Upload outcomes yield one toast and
// the error from the uploader, which wraps translation.ErrServerRejected or
// translation.ErrTransport.
//
// The submitting flag is cleared on every return path.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state.Submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	if f.state.File == nil {
		f.mu.Unlock()
		f.notifier.Notify(ctx, AlertMissingFile)
		return ErrMissingFile
	}
	if f.state.Email == "" {
		f.mu.Unlock()
		f.notifier.Notify(ctx, AlertMissingEmail)
		return ErrMissingEmail
	}
	f.state.Submitting = true
	sub := translation.Submission{
		Document: f.state.File,
		Language: f.state.Language,
		Email:    f.state.Email,
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.state.Submitting = false
		f.mu.Unlock()
	}()

	f.logger.DebugContext(ctx, "generating transcript",
		logger.Language(sub.Language),
		logger.FileName(sub.Document.Name()),
		logger.FileSize(sub.Document.Size()),
	)

	start := time.Now()
	_, err := f.upload(ctx, sub)
	if err != nil {
		n := ToastTransport
		if errors.Is(err, translation.ErrServerRejected) {
			n = ToastRejected
		}
		f.logger.WarnContext(ctx, "document upload failed",
			logger.Language(sub.Language),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		f.notifier.Notify(ctx, n)
		return err
	}

	f.logger.InfoContext(ctx, "document uploaded",
		logger.Language(sub.Language),
		logger.FileName(sub.Document.Name()),
		logger.Duration(time.Since(start)),
	)
	f.notifier.Notify(ctx, ToastSuccess)
	return nil
}

// upload converts uploader panics into transport errors so the flag and the
// notification contract hold even for a misbehaving Uploader.
func (f *Form) upload(ctx context.Context, sub translation.Submission) (receipt translation.Receipt, err error) {
	if f.uploader == nil {
		return translation.Receipt{}, errors.Join(translation.ErrTransport, errors.New("no uploader configured"))
	}
	defer func() {
		if r := recover(); r != nil {
			err = errors.Join(translation.ErrTransport, panicError{value: r})
		}
	}()
	return f.uploader.Upload(ctx, sub)
}

type panicError struct{ value any }

func (p panicError) Error() string {
	return fmt.Sprintf("uploader panicked: %v", p.value)
}
