// Package validator builds declarative validation rules.
//
// A Rule pairs a Check function with translation-friendly error metadata.
// Apply evaluates rules and aggregates failures into ValidationErrors, which
// satisfies the error interface:
//
//	err := validator.Apply(
//		validator.Required("server_url", cfg.ServerURL),
//		validator.ValidURLWithScheme("server_url", cfg.ServerURL, []string{"http", "https"}),
//		validator.InListString("language", lang, codes),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		fields := verrs.Messages(translate)
//	}
//
// Rules are stateless values and safe for concurrent use.
package validator
