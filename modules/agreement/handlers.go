package agreement

import (
	"context"
	"errors"

	"github.com/a-h/templ"

	"github.com/namanchhaparia06/agreement/handler"
	"github.com/namanchhaparia06/agreement/modules/agreement/views"
	"github.com/namanchhaparia06/agreement/pkg/file"
	"github.com/namanchhaparia06/agreement/pkg/i18n"
	"github.com/namanchhaparia06/agreement/pkg/logger"
	"github.com/namanchhaparia06/agreement/pkg/validator"
	"github.com/namanchhaparia06/agreement/svc/upload"
)

const translatePath = "/translate"

func (s *Service) page(ctx handler.Context, _ struct{}) handler.Response {
	form := upload.NewForm(s.uploader, nil)
	return handler.Templ(s.pageView(ctx, form, nil))
}

func (s *Service) languages(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(upload.Languages())
}

// translate runs one submission. DataStar requests get the busy signal
// before the upload starts and the outcome patches after it ends; plain
// requests get the page with the outcome rendered into it.
func (s *Service) translate(ctx handler.Context, req TranslateRequest) handler.Response {
	lang, err := s.resolveLanguage(ctx, req.Language)
	if err != nil {
		return handler.Error(err)
	}

	notes := &upload.Collector{}
	form := upload.NewForm(s.uploader, notes,
		upload.WithLogger(s.logger),
		upload.WithLanguage(lang),
	)
	form.SetEmail(req.Email)
	if req.Document != nil {
		doc, err := file.FromHeader(req.Document)
		if err != nil {
			return handler.Error(errors.Join(ErrInvalidDocument, err))
		}
		form.SelectFile(doc)
	}

	if !handler.IsDataStar(ctx.Request()) {
		s.submit(ctx, form)
		return handler.Templ(s.pageView(ctx, form, notes.All()))
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		if form.CanSubmit() && form.State().Email != "" {
			if err := stream.SendSignal("submitting", true); err != nil {
				return err
			}
		}

		s.submit(stream, form)

		patches := s.notificationPatches(stream, notes.All())
		if err := stream.SendPatches(patches...); err != nil {
			return err
		}
		return stream.SendSignal("submitting", false)
	})
}

// submit runs the form. Outcomes reach the user as notifications, so the
// error only needs logging.
func (s *Service) submit(ctx context.Context, form *upload.Form) {
	if err := form.Submit(ctx); err != nil {
		s.logger.DebugContext(ctx, "submission finished with error",
			logger.Component("agreement"),
			logger.Error(err),
		)
	}
}

// resolveLanguage canonicalizes the submitted code. An empty code selects
// the default language.
func (s *Service) resolveLanguage(ctx context.Context, code string) (string, error) {
	if code == "" {
		return upload.DefaultLanguage, nil
	}
	if lang, ok := upload.NormalizeLanguage(code); ok {
		return lang, nil
	}

	languages := upload.Languages()
	codes := make([]string, len(languages))
	for i, l := range languages {
		codes[i] = l.Code
	}
	err := validator.Apply(validator.InListString("language", code, codes))
	return "", s.validationError(ctx, err)
}

// validationError converts rule failures into a handler.ValidationError with
// messages in the request language.
func (s *Service) validationError(ctx context.Context, err error) error {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return err
	}

	var translate func(string, map[string]any) string
	if s.translator != nil {
		lang := i18n.GetLocale(ctx)
		translate = func(key string, values map[string]any) string {
			return s.translator.Tv(lang, key, values)
		}
	}

	out := handler.NewValidationError()
	for field, msgs := range verrs.Messages(translate) {
		for _, msg := range msgs {
			out.Add(field, msg)
		}
	}
	return out
}

func (s *Service) notificationPatches(ctx context.Context, notes []upload.Notification) []handler.TemplPatch {
	alert := views.AlertParams{}
	var patches []handler.TemplPatch
	for _, n := range notes {
		msg := s.t(ctx, n.Key, n.Message)
		if n.Kind == upload.KindAlert {
			alert.Message = msg
			continue
		}
		patches = append(patches, handler.Patch(
			views.Toast(views.ToastParams{Kind: string(n.Kind), Message: msg}),
			handler.WithTarget("#"+views.ToastContainerID),
			handler.WithPatchMode(handler.PatchPrepend),
		))
	}
	return append(patches, handler.Patch(views.Alert(alert)))
}

func (s *Service) pageView(ctx context.Context, form *upload.Form, notes []upload.Notification) templ.Component {
	state := form.State()
	c := s.copy(ctx)

	params := views.PageParams{
		Lang: i18n.GetLocale(ctx),
		Copy: c,
		Form: views.FormParams{
			Action:     translatePath,
			Copy:       c,
			FileName:   upload.NoFileSelected,
			Email:      state.Email,
			Language:   state.Language,
			Languages:  form.Languages(),
			Submitting: state.Submitting,
		},
	}
	for _, n := range notes {
		msg := s.t(ctx, n.Key, n.Message)
		if n.Kind == upload.KindAlert {
			params.Alert.Message = msg
			continue
		}
		params.Toasts = append(params.Toasts, views.ToastParams{Kind: string(n.Kind), Message: msg})
	}
	return views.Page(params)
}
