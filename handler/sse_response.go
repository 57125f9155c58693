package handler

import (
	"net/http"
)

// SSEHandler runs for the lifetime of one SSE response.
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

// Render rejects non-DataStar requests and runs the handler on the stream.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "http.error.datastar_required")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE creates a response that streams several updates over one request,
// for example a pending signal followed by the result toasts:
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		if err := stream.SendSignal("submitting", true); err != nil {
//			return err
//		}
//		_ = form.Submit(stream)
//		if err := stream.SendPatches(toasts...); err != nil {
//			return err
//		}
//		return stream.SendSignal("submitting", false)
//	})
//
// The request body must be read before the stream starts.
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
