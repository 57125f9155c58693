package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption configures a DataStar element patch.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the patch applies to.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch pairs a component with the options of its element patch.
type TemplPatch struct {
	Component TemplComponent
	Options   []TemplOption
}

// Patch builds a TemplPatch, e.g. a toast prepended to #toast-container:
//
//	handler.Patch(views.Toast(n), handler.WithTarget("#toast-container"), handler.WithPatchMode(handler.PatchPrepend))
func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templResponse TemplPatch

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.Component, t.Options...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.Component.Render(r.Context(), w)
}

// Templ renders component as an element patch for DataStar requests and as
// a plain HTML document otherwise.
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse(Patch(component, opts...))
}
