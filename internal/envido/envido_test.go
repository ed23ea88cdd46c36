package envido

import (
	"testing"

	"github.com/arcanaland/trucoworld/internal/card"
	"github.com/arcanaland/trucoworld/internal/deck"
	"github.com/arcanaland/trucoworld/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want int
	}{
		{"pair of espadas", "1e,7e,12o", 28},
		{"all figuras, different suits", "10o,11b,12c", 0},
		{"flor uses top two", "5c,6c,7c", 33},
		{"no pair, highest card", "3e,6b,12o", 6},
		{"pair of figuras", "10b,12b,7o", 20},
		{"figura and card", "11o,4o,7e", 24},
		{"flor with a figura", "12e,1e,3e", 24},
		{"pair ignores higher loose card", "1c,2c,7o", 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(card.MustParseHand(tt.hand))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScore_malformed(t *testing.T) {
	for _, hand := range [][]card.Card{
		nil,
		{},
		card.MustParseHand("7e"),
		card.MustParseHand("7e,6e"),
		card.MustParseHand("7e,6e,5e,4e"),
		card.MustParseHand("7e,7e,1o"),
		{{Rank: 8, Suit: card.Oros}, {Rank: 1, Suit: card.Oros}, {Rank: 2, Suit: card.Oros}},
	} {
		points, err := Score(hand)
		assert.ErrorIs(t, err, ErrMalformedHand, "%v", hand)
		assert.Equal(t, 0, points)
	}
}

func TestBreakdown(t *testing.T) {
	a := assert.New(t)

	r, err := Breakdown(card.MustParseHand("5c,6c,7c"))
	a.NoError(err)
	a.Equal(Max, r.Points)
	a.Equal(card.Copas, r.Suit)
	a.Equal(card.MustParseHand("7c,6c"), r.Cards)

	r, err = Breakdown(card.MustParseHand("3e,6b,12o"))
	a.NoError(err)
	a.Equal(6, r.Points)
	a.Equal(card.Suit(""), r.Suit)
	a.Equal(card.MustParseHand("6b"), r.Cards)
}

func TestScore_boundsAndOrder(t *testing.T) {
	gen := rng.NewSeeded(99)
	permutations := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	for round := 0; round < 200; round++ {
		d := deck.New(gen)
		hand := make([]card.Card, 0, deck.HandSize)
		for i := 0; i < deck.HandSize; i++ {
			c, err := d.Pop()
			require.NoError(t, err)
			hand = append(hand, c)
		}

		want, err := Score(hand)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, want, 0)
		assert.LessOrEqual(t, want, Max)

		for _, p := range permutations {
			got, err := Score([]card.Card{hand[p[0]], hand[p[1]], hand[p[2]]})
			require.NoError(t, err)
			assert.Equal(t, want, got, "%v", hand)
		}
	}
}
