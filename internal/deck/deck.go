package deck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/cardplay/internal/card"
	"github.com/arcanaland/cardplay/internal/hand"
)

// CardsPerPack is the size of one standard pack
const CardsPerPack = 52

// Deck represents one or more standard packs of playing cards
type Deck struct {
	ID          string
	Name        string
	Description string
	Packs       int
	Path        string

	cards []card.Card

	// Raw config data
	config *DeckConfig
}

var _ card.Cards = (*Deck)(nil)

// New builds a deck of the given number of standard packs, ordered by suit
// then by rank. Fewer than one pack is treated as one.
func New(packs int) *Deck {
	if packs < 1 {
		packs = 1
	}
	d := &Deck{
		ID:    "standard",
		Name:  "Standard",
		Packs: packs,
		cards: make([]card.Card, 0, packs*CardsPerPack),
	}
	for i := 0; i < packs; i++ {
		for s := range card.Suits() {
			for v := range card.Values() {
				d.cards = append(d.cards, card.New(v, s))
			}
		}
	}
	return d
}

// LoadDeck loads a deck definition from a directory
func LoadDeck(deckPath string) (*Deck, error) {
	// Check if deck.toml exists
	deckTomlPath := filepath.Join(deckPath, "deck.toml")
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck.toml not found in %s", deckPath)
	}

	config, err := DecodeConfig(deckTomlPath)
	if err != nil {
		return nil, err
	}

	d := New(config.Deck.Packs)
	d.ID = config.Deck.ID
	d.Name = config.Deck.Name
	d.Description = config.Deck.Description
	d.Path = deckPath
	d.config = config

	if config.Deck.ExcludedCards != nil {
		excluded, err := hand.FromStrings(config.Deck.ExcludedCards.Cards)
		if err != nil {
			return nil, fmt.Errorf("error parsing excluded cards: %w", err)
		}
		d.exclude(excluded.Cards())
	}

	return d, nil
}

// DecodeConfig decodes a deck.toml file without building the deck
func DecodeConfig(path string) (*DeckConfig, error) {
	var config DeckConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error parsing deck.toml: %w", err)
	}
	return &config, nil
}

// exclude drops every copy of the given cards, one per pack.
func (d *Deck) exclude(cards []card.Card) {
	drop := make(map[card.Card]bool, len(cards))
	for _, c := range cards {
		drop[c] = true
	}
	kept := d.cards[:0]
	for _, c := range d.cards {
		if !drop[c] {
			kept = append(kept, c)
		}
	}
	d.cards = kept
}

// Cards returns the cards of the deck in order.
func (d *Deck) Cards() []card.Card {
	return d.cards
}

// MutCards returns the cards for in-place modification of elements.
func (d *Deck) MutCards() []card.Card {
	return d.cards
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// ExcludedReason returns why cards were removed from the deck, if the
// definition gives a reason.
func (d *Deck) ExcludedReason() string {
	if d.config == nil || d.config.Deck.ExcludedCards == nil {
		return ""
	}
	return d.config.Deck.ExcludedCards.Reason
}

// Hand returns a new hand holding a copy of the deck's cards.
func (d *Deck) Hand() *hand.Hand {
	return hand.FromCards(d.cards)
}

// Deck configuration structures
type DeckConfig struct {
	Deck DeckSection `toml:"deck"`
}

type DeckSection struct {
	ID            string               `toml:"id"`
	Name          string               `toml:"name"`
	Description   string               `toml:"description"`
	Packs         int                  `toml:"packs"`
	Author        string               `toml:"author"`
	Tags          []string             `toml:"tags"`
	ExcludedCards *ExcludedCardSection `toml:"excluded_cards"`
}

type ExcludedCardSection struct {
	Cards  []string `toml:"cards"`
	Reason string   `toml:"reason"`
}
