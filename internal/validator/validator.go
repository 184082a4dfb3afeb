package validator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcanaland/cardplay/internal/card"
	"github.com/arcanaland/cardplay/internal/deck"
	"github.com/arcanaland/cardplay/internal/handfile"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether validation found no errors.
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Path    string
	Results ValidationResults
}

func NewValidator(path string) *Validator {
	return &Validator{
		Path:    path,
		Results: ValidationResults{},
	}
}

// Validate checks a hand file. The returned error is set only when the file
// cannot be read; problems with its contents are reported in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	f, err := handfile.Load(v.Path)
	if err != nil {
		return v.Results, err
	}

	if len(f.Hands) == 0 {
		v.Results.Errors = append(v.Results.Errors, "no hands defined (expecting [hands.<name>] tables)")
		return v.Results, nil
	}

	for _, name := range f.Names() {
		v.validateHand(name, f.Hands[name])
	}

	return v.Results, nil
}

// validateHand checks a single named hand
func (v *Validator) validateHand(name string, section handfile.HandSection) {
	if section.Description == "" {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("hands.%s.description is empty", name))
	}

	if len(section.Cards) == 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("hands.%s.cards is required", name))
		return
	}

	seen := make(map[card.Card]int)
	for i, abbrev := range section.Cards {
		c, err := card.Parse(abbrev)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("hands.%s.cards[%d]: %v", name, i, err))
			continue
		}
		seen[c]++
		// Duplicates are legal when several packs are in play.
		if seen[c] == 2 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("hands.%s holds %s more than once", name, c))
		}
	}
}

// ValidateDeck checks a deck definition directory
func (v *Validator) ValidateDeck() (ValidationResults, error) {
	deckTomlPath := filepath.Join(v.Path, "deck.toml")
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("deck.toml not found in %s", v.Path)
	}

	config, err := deck.DecodeConfig(deckTomlPath)
	if err != nil {
		return v.Results, err
	}

	if config.Deck.ID == "" {
		v.Results.Errors = append(v.Results.Errors, "deck.id is required in deck.toml")
	}

	if config.Deck.Name == "" {
		v.Results.Errors = append(v.Results.Errors, "deck.name is required in deck.toml")
	}

	if config.Deck.Packs < 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deck.packs must be at least 1, got %d", config.Deck.Packs))
	} else if config.Deck.Packs == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "deck.packs not set, assuming 1")
	}

	if excluded := config.Deck.ExcludedCards; excluded != nil {
		for i, abbrev := range excluded.Cards {
			if _, err := card.Parse(abbrev); err != nil {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("deck.excluded_cards.cards[%d]: %v", i, err))
			}
		}
		if len(excluded.Cards) > 0 && excluded.Reason == "" {
			v.Results.Warnings = append(v.Results.Warnings, "deck.excluded_cards.reason is empty")
		}
	}

	return v.Results, nil
}
