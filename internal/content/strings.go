package content

import "fmt"

// Strings is the UI string table for one language.
type Strings struct {
	lang    Language
	entries map[string]string
}

// NewStrings creates a string table from raw key/value pairs.
func NewStrings(lang Language, entries map[string]string) Strings {
	copied := make(map[string]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return Strings{lang: lang, entries: copied}
}

// Language returns the language of this table.
func (s Strings) Language() Language {
	return s.lang
}

// Lookup returns the string for key.
func (s Strings) Lookup(key string) (string, error) {
	v, ok := s.entries[key]
	if !ok {
		return "", fmt.Errorf("content: string %q in %s: %w", key, s.lang, ErrMissingTranslation)
	}
	return v, nil
}

// Text returns the string for key, or the key itself when absent.
// Catalogs are validated on load, so a miss here means a programming error
// and showing the key keeps it visible instead of rendering blank text.
func (s Strings) Text(key string) string {
	if v, ok := s.entries[key]; ok {
		return v
	}
	return key
}

// Len returns the number of entries.
func (s Strings) Len() int {
	return len(s.entries)
}

func (s Strings) has(key string) bool {
	_, ok := s.entries[key]
	return ok
}
