package upload

import (
	"slices"

	"golang.org/x/text/language"
)

// DefaultLanguage is selected when the form is created.
const DefaultLanguage = "en"

// Language is a selectable translation target.
type Language struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Order matters: the selector renders them as listed.
var languages = [...]Language{
	{Code: "en", Label: "English"},
	{Code: "en-IN", Label: "English (India)"},
	{Code: "en-US", Label: "English (US)"},
	{Code: "as", Label: "Assamese"},
	{Code: "bn", Label: "Bengali"},
	{Code: "gu", Label: "Gujarati"},
	{Code: "hi", Label: "Hindi"},
	{Code: "kn", Label: "Kannada"},
	{Code: "ml", Label: "Malayalam"},
	{Code: "mr", Label: "Marathi"},
	{Code: "or", Label: "Odia"},
	{Code: "pa", Label: "Punjabi"},
	{Code: "ta", Label: "Tamil"},
	{Code: "te", Label: "Telugu"},
	{Code: "ur", Label: "Urdu"},
}

// Languages returns a copy of the supported languages in display order.
func Languages() []Language {
	return slices.Clone(languages[:])
}

// LookupLanguage finds a language by its exact code.
func LookupLanguage(code string) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// NormalizeLanguage canonicalizes a BCP 47 tag ("EN-in" becomes "en-IN")
// and reports whether the result is a supported code.
func NormalizeLanguage(code string) (string, bool) {
	if l, ok := LookupLanguage(code); ok {
		return l.Code, true
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	canonical := tag.String()
	if l, ok := LookupLanguage(canonical); ok {
		return l.Code, true
	}
	return "", false
}
