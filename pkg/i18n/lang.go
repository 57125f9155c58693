package i18n

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is detected.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the Accept-Language header before parsing.
const maxAcceptLanguageLength = 4096

// Matcher picks the best supported language for a list of preferences.
type Matcher struct {
	supported []string
	matcher   language.Matcher
}

// NewMatcher builds a matcher over the supported codes. Codes that are not
// valid BCP 47 tags are ignored.
func NewMatcher(supported ...string) *Matcher {
	m := &Matcher{}
	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		m.supported = append(m.supported, code)
		tags = append(tags, tag)
	}
	if len(tags) > 0 {
		m.matcher = language.NewMatcher(tags)
	}
	return m
}

// Match returns the supported code closest to the given tags, or "" when
// none is close enough.
func (m *Matcher) Match(tags ...language.Tag) string {
	if m.matcher == nil || len(tags) == 0 {
		return ""
	}
	_, idx, conf := m.matcher.Match(tags...)
	if conf == language.No {
		return ""
	}
	return m.supported[idx]
}

// MatchString parses code and matches it. An unparsable code yields "".
func (m *Matcher) MatchString(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return m.Match(tag)
}

// ParseAcceptLanguage returns the supported language that best matches an
// Accept-Language header, honoring quality values. "en-US" matches a
// supported "en". defaultLang is returned when nothing matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if lang := NewMatcher(supportedLangs...).Match(acceptLanguageTags(header)...); lang != "" {
		return lang
	}
	return defaultLang
}

// acceptLanguageTags parses the header into tags ordered by preference.
// Entries are parsed one by one so a malformed entry does not discard the
// rest; entries with q=0 are dropped.
func acceptLanguageTags(header string) []language.Tag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	type weighted struct {
		tag language.Tag
		q   float32
	}
	var list []weighted
	for part := range strings.SplitSeq(header, ",") {
		tags, qs, err := language.ParseAcceptLanguage(part)
		if err != nil {
			continue
		}
		for i, tag := range tags {
			if qs[i] > 0 {
				list = append(list, weighted{tag: tag, q: qs[i]})
			}
		}
	}
	slices.SortStableFunc(list, func(a, b weighted) int {
		return cmp.Compare(b.q, a.q)
	})

	out := make([]language.Tag, len(list))
	for i, w := range list {
		out[i] = w.tag
	}
	return out
}
