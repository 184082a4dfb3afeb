// Package render formats cards and hands for a terminal.
package render

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/cardplay/internal/card"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// Renderer formats cards. The zero value prints plain abbreviations on a
// single line.
type Renderer struct {
	Color   bool
	Symbols bool
	// Width wraps output after this many columns; zero disables wrapping.
	Width int
}

// ForStdout returns a renderer sized to the terminal attached to stdout.
// Colour is only kept when stdout is a terminal.
func ForStdout(colored, symbols bool) Renderer {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return Renderer{Symbols: symbols, Width: DefaultWidth}
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = DefaultWidth
	}
	return Renderer{Color: colored, Symbols: symbols, Width: width}
}

// Card formats a single card.
func (r Renderer) Card(c card.Card) string {
	suit := c.Suit.Abbrev()
	if r.Symbols {
		suit = c.Suit.Symbol()
	}
	text := c.Value.Abbrev() + suit
	if !r.Color {
		return text
	}

	attr := color.FgHiWhite
	if c.Suit.IsRed() {
		attr = color.FgHiRed
	}
	painter := color.New(attr)
	painter.EnableColor()
	return painter.Sprint(text)
}

// Cards formats cards separated by sep, wrapping lines at r.Width.
func (r Renderer) Cards(cards []card.Card, sep string) string {
	var b strings.Builder
	column := 0
	for i, c := range cards {
		// Every card occupies two columns regardless of colour codes.
		cell := 2
		if i > 0 {
			if r.Width > 0 && column+len(sep)+cell > r.Width {
				b.WriteString(strings.TrimRight(sep, " "))
				b.WriteByte('\n')
				column = 0
			} else {
				b.WriteString(sep)
				column += len(sep)
			}
		}
		b.WriteString(r.Card(c))
		column += cell
	}
	return b.String()
}

// Hand formats the cards of any collection, space separated.
func (r Renderer) Hand(h card.Cards) string {
	return r.Cards(h.Cards(), " ")
}
