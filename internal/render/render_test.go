package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcanaland/cardplay/internal/card"
	"github.com/arcanaland/cardplay/internal/hand"
)

func TestRenderer_Card(t *testing.T) {
	c := card.MustParse("QH")

	assert.Equal(t, "QH", Renderer{}.Card(c))
	assert.Equal(t, "Q♥", Renderer{Symbols: true}.Card(c))

	colored := Renderer{Color: true}.Card(c)
	assert.Contains(t, colored, "QH")
	assert.Contains(t, colored, "\x1b[")
}

func TestRenderer_Hand(t *testing.T) {
	h, err := hand.FromStrings([]string{"AS", "2H", "KD"})
	assert.NoError(t, err)

	assert.Equal(t, "AS 2H KD", Renderer{}.Hand(h))
	assert.Equal(t, "", Renderer{}.Hand(hand.New()))
}

func TestRenderer_Wraps(t *testing.T) {
	h, err := hand.FromStrings([]string{"AS", "2H", "3H", "4H", "5H"})
	assert.NoError(t, err)

	out := Renderer{Width: 8}.Hand(h)

	lines := strings.Split(out, "\n")
	assert.Equal(t, []string{"AS 2H 3H", "4H 5H"}, lines)
}
