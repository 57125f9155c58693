package upload

import (
	"context"
	"sync"
)

// Kind tells the presentation layer how to surface a notification.
type Kind string

const (
	// KindAlert blocks the user until dismissed; used for missing input.
	KindAlert Kind = "alert"
	// KindSuccess is a transient toast for an accepted upload.
	KindSuccess Kind = "success"
	// KindFailure is a transient toast for a failed upload.
	KindFailure Kind = "failure"
)

// Notification is a user-facing message. Key is the i18n message key,
// Message the English text used when no translation exists.
type Notification struct {
	Kind    Kind   `json:"kind"`
	Key     string `json:"key"`
	Message string `json:"message"`
}

// IsToast reports whether the notification is a transient toast.
func (n Notification) IsToast() bool {
	return n.Kind == KindSuccess || n.Kind == KindFailure
}

var (
	AlertMissingFile = Notification{
		Kind:    KindAlert,
		Key:     "upload.alert.missing_file",
		Message: "Please upload a PDF first",
	}
	AlertMissingEmail = Notification{
		Kind:    KindAlert,
		Key:     "upload.alert.missing_email",
		Message: "Please enter your email",
	}
	ToastSuccess = Notification{
		Kind:    KindSuccess,
		Key:     "upload.toast.success",
		Message: "Document uploaded successfully! We'll send the translated document to your email.",
	}
	ToastRejected = Notification{
		Kind:    KindFailure,
		Key:     "upload.toast.rejected",
		Message: "Failed to upload document. Please try again.",
	}
	ToastTransport = Notification{
		Kind:    KindFailure,
		Key:     "upload.toast.transport",
		Message: "An error occurred. Please try again later.",
	}
)

// Notifier delivers notifications to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Collector buffers notifications so they can be rendered after Submit returns.
// Safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	items []Notification
}

func (c *Collector) Notify(_ context.Context, n Notification) {
	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()
}

// All returns the collected notifications in delivery order.
func (c *Collector) All() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Alerts returns only the alert notifications.
func (c *Collector) Alerts() []Notification {
	return c.filter(func(n Notification) bool { return n.Kind == KindAlert })
}

// Toasts returns only the toast notifications.
func (c *Collector) Toasts() []Notification {
	return c.filter(Notification.IsToast)
}

func (c *Collector) filter(keep func(Notification) bool) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Notification
	for _, n := range c.items {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
