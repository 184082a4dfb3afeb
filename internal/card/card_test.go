package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard_String(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{Card{Value: Ace, Suit: Hearts}, "AH"},
		{Card{Value: King, Suit: Spades}, "KS"},
		{Card{Value: Two, Suit: Diamonds}, "2D"},
		{Card{Value: Ten, Suit: Clubs}, "TC"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.String())
		})
	}
}

func TestCard_Name(t *testing.T) {
	assert.Equal(t, "Ace of Spades", New(Ace, Spades).Name())
	assert.Equal(t, "Ten of Diamonds", New(Ten, Diamonds).Name())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"AS", New(Ace, Spades)},
		{"as", New(Ace, Spades)},
		{"2H", New(Two, Hearts)},
		{"TD", New(Ten, Diamonds)},
		{"10d", New(Ten, Diamonds)},
		{"Q♦", New(Queen, Diamonds)},
		{" KC ", New(King, Clubs)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "A", "1S", "AX", "ZZ", "11H", "aces", "TwoH", "queenD", "KingS"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrInvalidCard)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for s := range Suits() {
		for v := range Values() {
			c := New(v, s)
			got, err := Parse(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, got)
		}
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, New(Jack, Hearts), MustParse("JH"))
	assert.Panics(t, func() { MustParse("XX") })
}

func TestParseSuit(t *testing.T) {
	for _, in := range []string{"h", "H", "♥", "hearts"} {
		s, err := ParseSuit(in)
		require.NoError(t, err)
		assert.Equal(t, Hearts, s)
	}
	_, err := ParseSuit("x")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestSuit_IsRed(t *testing.T) {
	assert.True(t, Hearts.IsRed())
	assert.True(t, Diamonds.IsRed())
	assert.False(t, Spades.IsRed())
	assert.False(t, Clubs.IsRed())
}

func TestCardsOfRank(t *testing.T) {
	cards := []Card{MustParse("AS"), MustParse("KH"), MustParse("AC")}

	got := CardsOfRank(cards, Ace)
	assert.Equal(t, []Card{MustParse("AS"), MustParse("AC")}, got)

	// The result must not alias the input.
	got[0] = MustParse("2D")
	assert.Equal(t, MustParse("AS"), cards[0])

	assert.Empty(t, CardsOfRank(cards, Seven))
}

func TestCardsOfSuit(t *testing.T) {
	cards := []Card{MustParse("AS"), MustParse("KH"), MustParse("2S")}

	assert.Equal(t, []Card{MustParse("AS"), MustParse("2S")}, CardsOfSuit(cards, Spades))
	assert.Empty(t, CardsOfSuit(cards, Clubs))
}

type sliceCards []Card

func (s sliceCards) Cards() []Card    { return s }
func (s sliceCards) MutCards() []Card { return s }

func TestSortByRank(t *testing.T) {
	cards := sliceCards{MustParse("KH"), MustParse("2S"), MustParse("AC"), MustParse("AS"), MustParse("2S")}

	SortByRank(cards)

	assert.Equal(t, sliceCards{
		MustParse("AS"), MustParse("AC"), MustParse("2S"), MustParse("2S"), MustParse("KH"),
	}, cards)
}
