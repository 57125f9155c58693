// Package handler turns typed handler functions into http.HandlerFunc values.
//
// A HandlerFunc receives a Context and a request value filled by binders, and
// returns a Response. Responses adapt to the caller: DataStar requests
// (Accept: text/event-stream) receive Server-Sent Event patches, regular
// browser requests receive HTML or JSON.
//
//	type TranslateRequest struct {
//		Document *multipart.FileHeader `file:"file"`
//		Language string                `form:"language"`
//		Email    string                `form:"email"`
//	}
//
//	r.Post("/translate", handler.Wrap(translate,
//		handler.WithBinders[handler.Context, TranslateRequest](binder.Form()),
//		handler.WithErrorHandler[handler.Context, TranslateRequest](errHandler),
//	))
//
// # Responses
//
//	handler.Templ(c, opts...)               // page, or one patch for DataStar
//	handler.SSE(fn)                         // signals and patches over one stream
//	handler.JSON(v), handler.JSONError(err) // {data, meta, error} envelope
//	handler.Error(err)                      // hand err to the error handler
//
// # Errors
//
// HTTPError carries a status and a translation key. ValidationError maps
// field names to messages. NewErrorHandler renders both as an error page for
// regular requests and as a toast prepended to #toast-container for DataStar
// requests.
package handler
