package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
)

// JSONResponse is the envelope of every JSON response.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail is the error member of the envelope. Details holds per-field
// messages for validation failures.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

type JSONOption func(*jsonResponse)

// WithJSONStatus overrides the status derived from the value.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) { r.body.Meta = meta }
}

// JSON wraps v in the envelope with status 200. A JSONResponse is sent as is;
// errors and *ErrorDetail values are rendered like JSONError.
func JSON(v any, opts ...JSONOption) Response {
	switch v.(type) {
	case error, *ErrorDetail:
		return JSONError(v, opts...)
	}
	r := &jsonResponse{status: http.StatusOK}
	if env, ok := v.(JSONResponse); ok {
		r.body = env
	} else {
		r.body.Data = v
	}
	return r.apply(opts)
}

// JSONError renders err, an error or *ErrorDetail, as the error member.
// The status follows the error: 422 for ValidationError, the HTTPError code,
// 500 for anything else.
func JSONError(err any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}
	switch e := err.(type) {
	case *ErrorDetail:
		r.body.Error = e
	case error:
		r.status, r.body.Error = errorDetail(e)
	}
	return r.apply(opts)
}

func (r *jsonResponse) apply(opts []JSONOption) Response {
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorDetail(err error) (int, *ErrorDetail) {
	var verr ValidationError
	if errors.As(err, &verr) {
		detail := &ErrorDetail{Code: "validation_error", Message: err.Error()}
		if len(verr) > 0 {
			detail.Details = maps.Clone(map[string][]string(verr))
		}
		return http.StatusUnprocessableEntity, detail
	}

	var herr HTTPError
	if errors.As(err, &herr) {
		return herr.Code, &ErrorDetail{Code: herr.Key, Message: http.StatusText(herr.Code)}
	}

	return http.StatusInternalServerError, &ErrorDetail{Code: "internal_error", Message: err.Error()}
}
