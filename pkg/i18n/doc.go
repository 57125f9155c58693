// Package i18n translates UI copy and negotiates the request language.
//
// Translations are nested maps keyed by language code, loaded once through a
// TranslationAdapter. FSAdapter reads YAML files from any fs.FS, so locale
// files can be embedded in the binary:
//
//	//go:embed translations/*.yaml
//	var locales embed.FS
//
//	tr, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "translations"),
//		i18n.WithDefaultLanguage("en"),
//	)
//
//	tr.T("hi", "upload.toast.success")
//
// Middleware stores the negotiated language in the request context so
// handlers can call Tc. Negotiation uses golang.org/x/text/language, which
// honors Accept-Language quality values and matches regional variants to
// their base language.
package i18n
