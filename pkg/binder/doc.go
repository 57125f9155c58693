// Package binder fills request structs from HTTP request bodies.
//
// Form handles urlencoded and multipart forms, including file uploads via
// `file:` tags. JSON handles strict application/json bodies. Both return
// functions compatible with handler.WithBinders:
//
//	handler.Wrap(translate,
//		handler.WithBinders[handler.Context, TranslateRequest](
//			binder.Form(binder.WithMaxMemory(32<<20)),
//		),
//	)
//
// Errors wrap the sentinel values in errors.go. A body cut by
// http.MaxBytesReader yields ErrRequestTooLarge.
package binder
