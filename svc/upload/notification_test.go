package upload_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/namanchhaparia06/agreement/svc/upload"
)

func TestCollector(t *testing.T) {
	t.Parallel()

	c := &upload.Collector{}
	ctx := context.Background()
	c.Notify(ctx, upload.AlertMissingFile)
	c.Notify(ctx, upload.ToastRejected)
	c.Notify(ctx, upload.ToastSuccess)

	assert.Len(t, c.All(), 3)
	assert.Equal(t, []upload.Notification{upload.AlertMissingFile}, c.Alerts())
	assert.Equal(t, []upload.Notification{upload.ToastRejected, upload.ToastSuccess}, c.Toasts())
}

func TestCollector_Concurrent(t *testing.T) {
	t.Parallel()

	c := &upload.Collector{}
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Notify(context.Background(), upload.ToastSuccess)
		}()
	}
	wg.Wait()

	assert.Len(t, c.Toasts(), 50)
	assert.Empty(t, c.Alerts())
}

func TestNotifierFunc(t *testing.T) {
	t.Parallel()

	var got upload.Notification
	n := upload.NotifierFunc(func(_ context.Context, n upload.Notification) { got = n })
	n.Notify(context.Background(), upload.ToastTransport)

	assert.Equal(t, upload.ToastTransport, got)
	assert.True(t, got.IsToast())
	assert.False(t, upload.AlertMissingEmail.IsToast())
}

func TestNotificationCopy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Please upload a PDF first", upload.AlertMissingFile.Message)
	assert.Equal(t, "Please enter your email", upload.AlertMissingEmail.Message)
	assert.Equal(t, "Document uploaded successfully! We'll send the translated document to your email.", upload.ToastSuccess.Message)
	assert.Equal(t, "Failed to upload document. Please try again.", upload.ToastRejected.Message)
	assert.Equal(t, "An error occurred. Please try again later.", upload.ToastTransport.Message)
}
