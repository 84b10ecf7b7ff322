package content

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is a short language code such as "en" or "hi".
type Language string

// English is the reference language every other table is validated against.
const English Language = "en"

// String returns the language code.
func (l Language) String() string {
	return string(l)
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	return language.Make(string(l))
}

// DisplayName returns the language's name in that language ("हिन्दी" for hi).
func (l Language) DisplayName() string {
	name := display.Self.Name(l.Tag())
	if name == "" {
		return string(l)
	}
	return name
}

// EnglishName returns the language's name in English ("Hindi" for hi).
func (l Language) EnglishName() string {
	name := display.English.Languages().Name(l.Tag())
	if name == "" {
		return string(l)
	}
	return name
}

// ParseLanguage accepts a BCP 47 code ("hi", "hi-IN") or an English language
// name ("hindi") and returns its base code.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("content: empty language")
	}

	if tag, err := language.Parse(s); err == nil {
		base, _ := tag.Base()
		return Language(base.String()), nil
	}

	// Fall back to English names, as typed in the text menus
	namer := display.English.Languages()
	candidates := append([]language.Tag{language.English, language.Hindi, language.Gujarati}, display.Supported.Tags()...)
	for _, tag := range candidates {
		if strings.EqualFold(namer.Name(tag), s) {
			base, _ := tag.Base()
			return Language(base.String()), nil
		}
	}

	return "", fmt.Errorf("content: unknown language %q", s)
}
