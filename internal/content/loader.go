package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/countries.json defaults/strings/*.yaml
var defaultFS embed.FS

// Country table file names tried in order inside a content directory.
var countryFiles = []string{"countries.json", "countries.yaml", "countries.yml"}

// Default returns the catalog built from the embedded data set.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		return nil, fmt.Errorf("content: embedded data: %w", err)
	}
	return LoadFS(sub)
}

// LoadDir loads a catalog from a directory containing a country table
// (countries.json or countries.yaml) and a strings/ directory with one
// <lang>.yaml file per language.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content: cannot open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content: %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS loads a catalog from any file system laid out like LoadDir expects.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	countries, err := loadCountries(fsys)
	if err != nil {
		return nil, err
	}

	tables, err := loadStrings(fsys)
	if err != nil {
		return nil, err
	}

	return NewCatalog(countries, tables)
}

// loadCountries reads the first country table found.
func loadCountries(fsys fs.FS) (map[string]Country, error) {
	for _, name := range countryFiles {
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("content: failed to read %s: %w", name, err)
		}
		countries, err := ParseCountries(name, data)
		if err != nil {
			return nil, err
		}
		return countries, nil
	}
	return nil, fmt.Errorf("content: no country table (%s)", strings.Join(countryFiles, ", "))
}

// ParseCountries decodes a country table. The format is chosen by the
// file name's extension: .json, or .yaml/.yml.
func ParseCountries(name string, data []byte) (map[string]Country, error) {
	var countries map[string]Country

	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".json":
		if err := json.Unmarshal(data, &countries); err != nil {
			return nil, fmt.Errorf("content: failed to parse %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &countries); err != nil {
			return nil, fmt.Errorf("content: failed to parse %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("content: unsupported country table format %q", ext)
	}

	for key, country := range countries {
		country.Key = key
		countries[key] = country
	}
	return countries, nil
}

// loadStrings reads every strings/<lang>.yaml file.
func loadStrings(fsys fs.FS) ([]Strings, error) {
	entries, err := fs.ReadDir(fsys, "strings")
	if err != nil {
		return nil, fmt.Errorf("content: cannot read strings directory: %w", err)
	}

	var tables []Strings
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := path.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		lang, err := ParseLanguage(strings.TrimSuffix(entry.Name(), ext))
		if err != nil {
			return nil, err
		}

		data, err := fs.ReadFile(fsys, path.Join("strings", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("content: failed to read %s: %w", entry.Name(), err)
		}

		var raw map[string]string
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("content: failed to parse %s: %w", entry.Name(), err)
		}
		tables = append(tables, NewStrings(lang, raw))
	}

	if len(tables) == 0 {
		return nil, fmt.Errorf("content: no string tables found")
	}
	return tables, nil
}
