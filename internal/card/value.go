package card

import (
	"fmt"
	"iter"
	"strings"
)

// Value is the rank of a playing card, independent of its suit.
type Value uint8

// Standard card values
const (
	Two Value = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// valuesInOrder lists every value by ordinal, Ace low.
var valuesInOrder = [13]Value{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var valueNames = [13]string{
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

var valueAbbrevs = [13]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "T",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

// Values yields all thirteen values in ascending rank order, from Ace
// (ordinal 0) to King (ordinal 12). Each call starts a fresh sequence.
func Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range valuesInOrder {
			if !yield(v) {
				return
			}
		}
	}
}

// Ordinal returns the rank position of v in [0,12]. Ace is 0 and King is 12.
func (v Value) Ordinal() int {
	switch v {
	case Ace:
		return 0
	case Two:
		return 1
	case Three:
		return 2
	case Four:
		return 3
	case Five:
		return 4
	case Six:
		return 5
	case Seven:
		return 6
	case Eight:
		return 7
	case Nine:
		return 8
	case Ten:
		return 9
	case Jack:
		return 10
	case Queen:
		return 11
	case King:
		return 12
	default:
		panic(fmt.Sprintf("card: invalid value %d", uint8(v)))
	}
}

// Less reports whether v ranks below w.
func (v Value) Less(w Value) bool {
	return v.Ordinal() < w.Ordinal()
}

// String returns the capitalized English name, e.g. "Queen".
func (v Value) String() string {
	if !v.valid() {
		return fmt.Sprintf("Value(%d)", uint8(v))
	}
	return valueNames[v]
}

// Abbrev returns the single character used in short card notation.
func (v Value) Abbrev() string {
	if !v.valid() {
		return "?"
	}
	return valueAbbrevs[v]
}

func (v Value) valid() bool {
	return v <= Ace
}

// ValueFromOrdinal is the inverse of Ordinal.
func ValueFromOrdinal(n int) (Value, bool) {
	if n < 0 || n >= len(valuesInOrder) {
		return 0, false
	}
	return valuesInOrder[n], true
}

// ParseValue accepts a rank abbreviation ("A", "T", "10") or a name
// ("ace"), ignoring case.
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if v, ok := parseRankAbbrev(s); ok {
		return v, nil
	}
	for v := range Values() {
		if strings.EqualFold(s, v.String()) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, s)
}

// parseRankAbbrev matches only short card notation: A, 2-9, T, 10, J, Q, K.
func parseRankAbbrev(s string) (Value, bool) {
	if s == "10" {
		return Ten, true
	}
	for v := range Values() {
		if strings.EqualFold(s, v.Abbrev()) {
			return v, true
		}
	}
	return 0, false
}
