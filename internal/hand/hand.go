// Package hand provides Hand, an ordered collection of cards held in
// some game context, e.g. the cards a player is holding.
package hand

import (
	"fmt"
	"strings"

	"github.com/arcanaland/cardplay/internal/card"
)

// Hand is zero or more cards in the order they were received. Duplicates
// are allowed, since several packs may be in play. The zero value is an
// empty hand ready for use.
//
// A Hand is not safe for concurrent use.
type Hand struct {
	cards []card.Card
}

var _ card.Cards = (*Hand)(nil)

// New makes an empty Hand.
func New() *Hand {
	return &Hand{}
}

// FromHand makes a Hand holding a copy of other's cards.
func FromHand(other *Hand) *Hand {
	return FromCards(other.Cards())
}

// FromCards makes a Hand holding a copy of cards.
func FromCards(cards []card.Card) *Hand {
	return &Hand{cards: append([]card.Card(nil), cards...)}
}

// FromStrings makes a Hand from abbreviated card strings such as "AS" or
// "TH", in the given order. The first malformed abbreviation aborts
// construction.
func FromStrings(abbrevs []string) (*Hand, error) {
	cards := make([]card.Card, 0, len(abbrevs))
	for i, s := range abbrevs {
		c, err := card.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		cards = append(cards, c)
	}
	return &Hand{cards: cards}, nil
}

// PushCard adds one card to the end of the hand.
func (h *Hand) PushCard(c card.Card) {
	h.cards = append(h.cards, c)
}

// PushCards adds zero or more cards, keeping their order.
func (h *Hand) PushCards(cards ...card.Card) {
	h.cards = append(h.cards, cards...)
}

// PushHand adds the cards of other without modifying it.
func (h *Hand) PushHand(other *Hand) {
	h.cards = append(h.cards, other.Cards()...)
}

// AppendCard is an alias for PushCard.
func (h *Hand) AppendCard(c card.Card) {
	h.PushCard(c)
}

// AppendHand is an alias for PushHand.
func (h *Hand) AppendHand(other *Hand) {
	h.PushHand(other)
}

// Len returns the number of cards.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Clear empties the hand.
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

// Remove removes the card at index and returns it. It panics if index is
// out of range.
func (h *Hand) Remove(index int) card.Card {
	if index < 0 || index >= len(h.cards) {
		panic(fmt.Sprintf("hand: remove index %d out of range [0:%d]", index, len(h.cards)))
	}
	c := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return c
}

// RemoveCard removes the first card equal to c. Nothing happens when the
// hand does not hold c.
func (h *Hand) RemoveCard(c card.Card) {
	for i, held := range h.cards {
		if held == c {
			h.Remove(i)
			return
		}
	}
}

// RemoveCards calls RemoveCard for each of cards in turn, so each
// element removes at most one matching card.
func (h *Hand) RemoveCards(cards ...card.Card) {
	for _, c := range cards {
		h.RemoveCard(c)
	}
}

// Cards returns the cards held. The slice aliases the hand's storage and
// is only valid until the next mutation.
func (h *Hand) Cards() []card.Card {
	if h == nil {
		return nil
	}
	return h.cards
}

// MutCards returns the cards for in-place modification of elements.
func (h *Hand) MutCards() []card.Card {
	return h.cards
}

// CardsOfRank returns a copy of the cards of rank v.
func (h *Hand) CardsOfRank(v card.Value) []card.Card {
	return card.CardsOfRank(h.cards, v)
}

// CardsOfSuit returns a copy of the cards of suit s.
func (h *Hand) CardsOfSuit(s card.Suit) []card.Card {
	return card.CardsOfSuit(h.cards, s)
}

// Sort orders the hand by rank, Ace low.
func (h *Hand) Sort() {
	card.SortByRank(h)
}

// Clone returns an independent copy of the hand.
func (h *Hand) Clone() *Hand {
	return FromHand(h)
}

// String renders the hand as comma separated card abbreviations, e.g.
// "2H,AS". An empty hand renders as "".
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}
