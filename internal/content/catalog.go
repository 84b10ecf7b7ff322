package content

import (
	"errors"
	"fmt"
	"sort"
)

// Catalog is the in-memory content store: the country table plus the UI
// string tables. It is safe for concurrent reads once built.
type Catalog struct {
	countries map[string]Country
	keys      []string
	strings   map[Language]Strings
	languages []Language
}

// NewCatalog builds a catalog from countries and string tables.
// The returned catalog is validated; see Validate.
func NewCatalog(countries map[string]Country, tables []Strings) (*Catalog, error) {
	c := &Catalog{
		countries: make(map[string]Country, len(countries)),
		strings:   make(map[Language]Strings, len(tables)),
	}

	for key, country := range countries {
		country.Key = key
		c.countries[key] = country
		c.keys = append(c.keys, key)
	}
	sort.Strings(c.keys)

	for _, t := range tables {
		if _, dup := c.strings[t.Language()]; dup {
			return nil, fmt.Errorf("content: duplicate string table for %s", t.Language())
		}
		c.strings[t.Language()] = t
		c.languages = append(c.languages, t.Language())
	}
	sortLanguages(c.languages)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// sortLanguages orders languages with English first, then by code.
func sortLanguages(langs []Language) {
	sort.SliceStable(langs, func(i, j int) bool {
		if langs[i] == English || langs[j] == English {
			return langs[i] == English && langs[j] != English
		}
		return langs[i] < langs[j]
	})
}

// Validate checks that every language has every UI string English has, and
// that every country carries a name, at least one hint and a facts list in
// every language. All problems are reported together.
func (c *Catalog) Validate() error {
	var errs []error

	ref, ok := c.strings[English]
	if !ok {
		errs = append(errs, fmt.Errorf("content: no %s string table", English))
	}

	for _, lang := range c.languages {
		if !ok || lang == English {
			continue
		}
		table := c.strings[lang]
		for key := range ref.entries {
			if !table.has(key) {
				errs = append(errs, fmt.Errorf("content: string %q in %s: %w", key, lang, ErrMissingTranslation))
			}
		}
	}

	for _, key := range c.keys {
		country := c.countries[key]
		for _, lang := range c.languages {
			if _, ok := country.Names[lang]; !ok {
				errs = append(errs, fmt.Errorf("content: name of %s in %s: %w", key, lang, ErrMissingTranslation))
			}
			if len(country.Hints[lang]) == 0 {
				errs = append(errs, fmt.Errorf("content: hints of %s in %s: %w", key, lang, ErrMissingTranslation))
			}
			if _, ok := country.Facts[lang]; !ok {
				errs = append(errs, fmt.Errorf("content: facts of %s in %s: %w", key, lang, ErrMissingTranslation))
			}
		}
	}

	return errors.Join(errs...)
}

// CountryKeys returns all country keys in sorted order.
func (c *Catalog) CountryKeys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Len returns the number of countries.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// Country returns the full record for key.
func (c *Catalog) Country(key string) (Country, error) {
	country, ok := c.countries[key]
	if !ok {
		return Country{}, fmt.Errorf("content: %q: %w", key, ErrUnknownCountry)
	}
	return country, nil
}

// Name returns the display name of a country in lang.
func (c *Catalog) Name(key string, lang Language) (string, error) {
	country, err := c.Country(key)
	if err != nil {
		return "", err
	}
	name, ok := country.Names[lang]
	if !ok {
		return "", fmt.Errorf("content: name of %s in %s: %w", key, lang, ErrMissingTranslation)
	}
	return name, nil
}

// Flag returns the flag identifier of a country.
func (c *Catalog) Flag(key string) (string, error) {
	country, err := c.Country(key)
	if err != nil {
		return "", err
	}
	return country.Flag, nil
}

// Hints returns the ordered hints for a country in lang.
func (c *Catalog) Hints(key string, lang Language) ([]string, error) {
	country, err := c.Country(key)
	if err != nil {
		return nil, err
	}
	hints, ok := country.Hints[lang]
	if !ok {
		return nil, fmt.Errorf("content: hints of %s in %s: %w", key, lang, ErrMissingTranslation)
	}
	return append([]string(nil), hints...), nil
}

// Facts returns the informational facts for a country in lang.
func (c *Catalog) Facts(key string, lang Language) ([]string, error) {
	country, err := c.Country(key)
	if err != nil {
		return nil, err
	}
	facts, ok := country.Facts[lang]
	if !ok {
		return nil, fmt.Errorf("content: facts of %s in %s: %w", key, lang, ErrMissingTranslation)
	}
	return append([]string(nil), facts...), nil
}

// Languages returns the supported languages, English first.
func (c *Catalog) Languages() []Language {
	langs := make([]Language, len(c.languages))
	copy(langs, c.languages)
	return langs
}

// Strings returns the UI string table for lang.
func (c *Catalog) Strings(lang Language) (Strings, error) {
	table, ok := c.strings[lang]
	if !ok {
		return Strings{}, fmt.Errorf("content: strings for %s: %w", lang, ErrMissingTranslation)
	}
	return table, nil
}
