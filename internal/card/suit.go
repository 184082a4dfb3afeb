package card

import (
	"fmt"
	"iter"
	"strings"
)

// Suit of a playing card
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suitInfo = [4]struct {
	name   string
	abbrev string
	symbol string
}{
	Spades:   {"Spades", "S", "♠"},
	Hearts:   {"Hearts", "H", "♥"},
	Diamonds: {"Diamonds", "D", "♦"},
	Clubs:    {"Clubs", "C", "♣"},
}

// Suits yields the four suits in declaration order.
func Suits() iter.Seq[Suit] {
	return func(yield func(Suit) bool) {
		for s := Spades; s <= Clubs; s++ {
			if !yield(s) {
				return
			}
		}
	}
}

func (s Suit) String() string {
	if s > Clubs {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitInfo[s].name
}

// Abbrev returns the suit letter used in short card notation.
func (s Suit) Abbrev() string {
	if s > Clubs {
		return "?"
	}
	return suitInfo[s].abbrev
}

// Symbol returns the unicode pip for the suit.
func (s Suit) Symbol() string {
	if s > Clubs {
		return "?"
	}
	return suitInfo[s].symbol
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit accepts a suit letter, symbol or name, ignoring case.
func ParseSuit(s string) (Suit, error) {
	s = strings.TrimSpace(s)
	for suit := range Suits() {
		info := suitInfo[suit]
		if strings.EqualFold(s, info.abbrev) || s == info.symbol || strings.EqualFold(s, info.name) {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, s)
}
