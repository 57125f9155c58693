package views

import (
	"embed"
	"encoding/json"
	"html/template"

	"github.com/a-h/templ"

	"github.com/namanchhaparia06/agreement/handler"
	"github.com/namanchhaparia06/agreement/svc/upload"
)

// DatastarSrc is the client bundle the page loads.
const DatastarSrc = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.4/bundles/datastar.js"

// Element ids patched by DataStar responses.
const (
	FormID           = "agreement-form"
	AlertID          = "alert"
	ToastContainerID = "toast-container"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func component(name string, data any) templ.Component {
	return templ.FromGoHTML(templates.Lookup(name), data)
}

// Copy is the translated UI text.
type Copy struct {
	Title            string
	UploadDocument   string
	UploadPDF        string
	SelectLanguage   string
	Email            string
	EmailPlaceholder string
	Translate        string
	Uploading        string
}

// DefaultCopy returns the English UI text.
func DefaultCopy() Copy {
	return Copy{
		Title:            "Document Agreement",
		UploadDocument:   "Upload Document",
		UploadPDF:        "Upload PDF",
		SelectLanguage:   "Select Language",
		Email:            "Email",
		EmailPlaceholder: "Enter your email",
		Translate:        "Translate",
		Uploading:        "Uploading...",
	}
}

// NewCopy resolves every label through translate, which receives the
// message key and the English default.
func NewCopy(translate func(key, fallback string) string) Copy {
	c := DefaultCopy()
	if translate == nil {
		return c
	}
	return Copy{
		Title:            translate("page.title", c.Title),
		UploadDocument:   translate("form.upload_document", c.UploadDocument),
		UploadPDF:        translate("form.upload_pdf", c.UploadPDF),
		SelectLanguage:   translate("form.select_language", c.SelectLanguage),
		Email:            translate("form.email", c.Email),
		EmailPlaceholder: translate("form.email_placeholder", c.EmailPlaceholder),
		Translate:        translate("form.translate", c.Translate),
		Uploading:        translate("form.uploading", c.Uploading),
	}
}

// LanguageOption is one entry of the language selector.
type LanguageOption struct {
	Code     string
	Label    string
	Selected bool
}

// FormParams describes the agreement form.
type FormParams struct {
	Action     string
	Copy       Copy
	FileName   string
	Email      string
	Language   string
	Languages  []upload.Language
	Submitting bool
}

// Options returns the selector entries with the current language selected.
func (p FormParams) Options() []LanguageOption {
	opts := make([]LanguageOption, len(p.Languages))
	for i, l := range p.Languages {
		opts[i] = LanguageOption{Code: l.Code, Label: l.Label, Selected: l.Code == p.Language}
	}
	return opts
}

// ButtonLabel is the submit label for the server-rendered state.
func (p FormParams) ButtonLabel() string {
	if p.Submitting {
		return p.Copy.Uploading
	}
	return p.Copy.Translate
}

// Signals is the initial DataStar signal state of the form.
func (p FormParams) Signals() string {
	data, _ := json.Marshal(map[string]any{
		"fileName":   p.FileName,
		"hasFile":    false,
		"submitting": p.Submitting,
		"labels": map[string]string{
			"translate": p.Copy.Translate,
			"uploading": p.Copy.Uploading,
		},
	})
	return string(data)
}

func Form(p FormParams) templ.Component {
	return component("form", p)
}

// AlertParams holds a blocking message. An empty message renders an empty
// placeholder that later patches can fill.
type AlertParams struct {
	Message string
}

func Alert(p AlertParams) templ.Component {
	return component("alert", p)
}

// ToastParams holds a transient message. Kind is one of success, failure,
// warning or error.
type ToastParams struct {
	Kind    string
	Message string
}

func Toast(p ToastParams) templ.Component {
	return component("toast", p)
}

// PageParams describes the full page.
type PageParams struct {
	Lang        string
	Copy        Copy
	DatastarSrc string
	Alert       AlertParams
	Toasts      []ToastParams
	Form        FormParams
}

func Page(p PageParams) templ.Component {
	if p.DatastarSrc == "" {
		p.DatastarSrc = DatastarSrc
	}
	return component("page", p)
}

// ErrorToast adapts Toast to the handler error toast contract.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return Toast(ToastParams{Kind: p.Type, Message: p.Message})
}

func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return component("error_page", p)
}
