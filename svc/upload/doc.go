// Package upload implements the document agreement form: the user picks a
// PDF, chooses one of the supported languages, enters an email address and
// submits the document to the translation server.
//
// The Form is presentation-agnostic. The web module and the CLI both drive
// it through the same calls:
//
//	collector := &upload.Collector{}
//	form := upload.NewForm(client, collector, upload.WithLogger(log))
//	form.SelectFile(src)
//	form.SetLanguage("hi")
//	form.SetEmail("user@example.com")
//	if err := form.Submit(ctx); err != nil {
//	    // collector.Alerts() or collector.Toasts() hold what to show
//	}
//
// Every Submit produces exactly one Notification for the user: an alert when
// the document or the email is missing, otherwise a success or failure toast
// once the server has answered. A second Submit while one is in flight is
// refused with ErrSubmitInProgress.
package upload
