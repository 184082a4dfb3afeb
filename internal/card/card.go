package card

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidCard is wrapped by every parse failure in this package.
var ErrInvalidCard = errors.New("invalid card")

// Card represents a playing card. Cards compare equal with == when rank
// and suit match.
type Card struct {
	Value Value
	Suit  Suit
}

// New returns the card of the given rank and suit.
func New(v Value, s Suit) Card {
	return Card{Value: v, Suit: s}
}

// String returns the short form, e.g. "AS" or "TH".
func (c Card) String() string {
	return c.Value.Abbrev() + c.Suit.Abbrev()
}

// Name returns the long form, e.g. "Ace of Spades".
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Value, c.Suit)
}

// Parse converts an abbreviation such as "AS", "10h" or "Q♦" into a Card.
func Parse(s string) (Card, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Card{}, fmt.Errorf("%w: empty string", ErrInvalidCard)
	}

	// The suit is the last rune; it may be a multi-byte symbol.
	runes := []rune(trimmed)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q is too short", ErrInvalidCard, s)
	}
	rankPart := string(runes[:len(runes)-1])
	suitPart := string(runes[len(runes)-1])

	v, ok := parseRankAbbrev(rankPart)
	if !ok {
		return Card{}, fmt.Errorf("parsing %q: %w: unknown rank %q", s, ErrInvalidCard, rankPart)
	}
	suit, err := ParseSuit(suitPart)
	if err != nil {
		return Card{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return Card{Value: v, Suit: suit}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// card literals.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Cards is implemented by any collection that exposes its cards as a
// slice. MutCards allows elements to be changed in place; it must not be
// used to grow or shrink the collection.
type Cards interface {
	Cards() []Card
	MutCards() []Card
}

// CardsOfRank returns a new slice holding the cards of rank v, in order.
func CardsOfRank(cards []Card, v Value) []Card {
	var result []Card
	for _, c := range cards {
		if c.Value == v {
			result = append(result, c)
		}
	}
	return result
}

// CardsOfSuit returns a new slice holding the cards of suit s, in order.
func CardsOfSuit(cards []Card, s Suit) []Card {
	var result []Card
	for _, c := range cards {
		if c.Suit == s {
			result = append(result, c)
		}
	}
	return result
}

// SortByRank sorts the collection in place by value ordinal, then suit.
// Equal cards keep their relative order.
func SortByRank(c Cards) {
	slices.SortStableFunc(c.MutCards(), func(a, b Card) int {
		if d := a.Value.Ordinal() - b.Value.Ordinal(); d != 0 {
			return d
		}
		return int(a.Suit) - int(b.Suit)
	})
}
