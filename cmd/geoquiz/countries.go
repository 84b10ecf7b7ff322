package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/geoquiz/internal/content"
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List the countries in the data set",
	Long: `Shows every country the quiz can ask about, with its name in the
selected language and the number of hints available.

Examples:
  geoquiz countries
  geoquiz countries --lang hi
  geoquiz countries --content ./my-data`,
	Args: cobra.NoArgs,
	RunE: runCountries,
}

func runCountries(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	lang := content.Language(cfg.Language)
	keys := catalog.CountryKeys()
	if len(keys) == 0 {
		fmt.Println("No countries available.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Key", "Flag", "Name", "Hints", "Facts")
	for _, key := range keys {
		name, err := catalog.Name(key, lang)
		if err != nil {
			return err
		}
		flag, _ := catalog.Flag(key)
		hints, _ := catalog.Hints(key, lang)
		facts, _ := catalog.Facts(key, lang)
		t.Row(key, content.FlagEmoji(flag), name, fmt.Sprintf("%d", len(hints)), fmt.Sprintf("%d", len(facts)))
	}

	fmt.Printf("Countries (%s):\n\n", lang.EnglishName())
	fmt.Println(t.String())
	fmt.Printf("\n%d countries, languages: ", len(keys))
	for i, l := range catalog.Languages() {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Print(l.String())
	}
	fmt.Println()
	return nil
}
