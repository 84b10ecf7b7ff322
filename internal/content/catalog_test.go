package content

import (
	"errors"
	"testing"
)

func testCountries() map[string]Country {
	return map[string]Country{
		"india": {
			Names: map[Language]string{"en": "India", "hi": "भारत"},
			Flag:  ":flag_in:",
			Hints: map[Language][]string{
				"en": {"Taj Mahal", "Cricket"},
				"hi": {"ताजमहल", "क्रिकेट"},
			},
			Facts: map[Language][]string{"en": {"Capital: New Delhi"}, "hi": {"राजधानी: नई दिल्ली"}},
		},
		"japan": {
			Names: map[Language]string{"en": "Japan", "hi": "जापान"},
			Flag:  "jp",
			Hints: map[Language][]string{"en": {"Mount Fuji"}, "hi": {"माउंट फुजी"}},
			Facts: map[Language][]string{"en": {}, "hi": {}},
		},
	}
}

func testTables() []Strings {
	return []Strings{
		NewStrings("hi", map[string]string{KeyGameTitle: "देश पहेली"}),
		NewStrings("en", map[string]string{KeyGameTitle: "Country Puzzle"}),
	}
}

func TestNewCatalogLookups(t *testing.T) {
	c, err := NewCatalog(testCountries(), testTables())
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}

	keys := c.CountryKeys()
	if len(keys) != 2 || keys[0] != "india" || keys[1] != "japan" {
		t.Errorf("CountryKeys() = %v, expected [india japan]", keys)
	}

	name, err := c.Name("japan", "hi")
	if err != nil || name != "जापान" {
		t.Errorf("Name(japan, hi) = %q, %v", name, err)
	}

	flag, err := c.Flag("india")
	if err != nil || flag != ":flag_in:" {
		t.Errorf("Flag(india) = %q, %v", flag, err)
	}

	hints, err := c.Hints("india", "en")
	if err != nil || len(hints) != 2 {
		t.Fatalf("Hints(india, en) = %v, %v", hints, err)
	}
	// Returned slices must not alias catalog data
	hints[0] = "changed"
	again, _ := c.Hints("india", "en")
	if again[0] != "Taj Mahal" {
		t.Error("Hints() should return a copy")
	}

	langs := c.Languages()
	if len(langs) != 2 || langs[0] != English {
		t.Errorf("Languages() = %v, expected English first", langs)
	}
}

func TestCatalogMissingTranslation(t *testing.T) {
	c, err := NewCatalog(testCountries(), testTables())
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}

	if _, err := c.Name("india", "gu"); !errors.Is(err, ErrMissingTranslation) {
		t.Errorf("Name(india, gu) error = %v, expected ErrMissingTranslation", err)
	}
	if _, err := c.Hints("india", "gu"); !errors.Is(err, ErrMissingTranslation) {
		t.Errorf("Hints(india, gu) error = %v, expected ErrMissingTranslation", err)
	}
	if _, err := c.Facts("india", "gu"); !errors.Is(err, ErrMissingTranslation) {
		t.Errorf("Facts(india, gu) error = %v, expected ErrMissingTranslation", err)
	}
	if _, err := c.Strings("gu"); !errors.Is(err, ErrMissingTranslation) {
		t.Errorf("Strings(gu) error = %v, expected ErrMissingTranslation", err)
	}
	if _, err := c.Name("atlantis", "en"); !errors.Is(err, ErrUnknownCountry) {
		t.Errorf("Name(atlantis) error = %v, expected ErrUnknownCountry", err)
	}
}

func TestCatalogValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(countries map[string]Country, tables []Strings) []Strings
	}{
		{
			name: "country missing a name",
			mutate: func(countries map[string]Country, tables []Strings) []Strings {
				delete(countries["japan"].Names, "hi")
				return tables
			},
		},
		{
			name: "country with no hints",
			mutate: func(countries map[string]Country, tables []Strings) []Strings {
				countries["india"].Hints["en"] = nil
				return tables
			},
		},
		{
			name: "country missing facts",
			mutate: func(countries map[string]Country, tables []Strings) []Strings {
				delete(countries["japan"].Facts, "en")
				return tables
			},
		},
		{
			name: "string table missing a key",
			mutate: func(countries map[string]Country, tables []Strings) []Strings {
				return []Strings{
					NewStrings("en", map[string]string{KeyGameTitle: "x", KeyBack: "Back"}),
					NewStrings("hi", map[string]string{KeyGameTitle: "y"}),
				}
			},
		},
		{
			name: "no English table",
			mutate: func(countries map[string]Country, tables []Strings) []Strings {
				return tables[:1]
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			countries := testCountries()
			tables := tc.mutate(countries, testTables())
			if _, err := NewCatalog(countries, tables); err == nil {
				t.Error("NewCatalog() should fail validation")
			}
		})
	}
}

func TestNewCatalogDuplicateTable(t *testing.T) {
	tables := append(testTables(), NewStrings("en", map[string]string{KeyGameTitle: "again"}))
	if _, err := NewCatalog(testCountries(), tables); err == nil {
		t.Error("NewCatalog() should reject duplicate string tables")
	}
}

func TestStringsLookup(t *testing.T) {
	s := NewStrings("en", map[string]string{KeyBack: "Back"})

	if got := s.Text(KeyBack); got != "Back" {
		t.Errorf("Text(back) = %q, expected %q", got, "Back")
	}
	if got := s.Text("nope"); got != "nope" {
		t.Errorf("Text(nope) = %q, expected the key", got)
	}
	if _, err := s.Lookup("nope"); !errors.Is(err, ErrMissingTranslation) {
		t.Errorf("Lookup(nope) error = %v, expected ErrMissingTranslation", err)
	}
}
