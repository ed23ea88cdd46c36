package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	assert.Equal(t, "7 de espadas", Card{Rank: 7, Suit: Espadas}.String())
	assert.Equal(t, "12 de oros", Card{Rank: 12, Suit: Oros}.String())
	assert.Equal(t, "12o", Card{Rank: 12, Suit: Oros}.Short())
	assert.Equal(t, "1b", Card{Rank: 1, Suit: Bastos}.Short())
}

func TestCard_EnvidoValue(t *testing.T) {
	for _, rank := range []int{1, 2, 3, 4, 5, 6, 7} {
		assert.Equal(t, rank, Card{Rank: rank, Suit: Copas}.EnvidoValue())
	}

	for _, rank := range []int{Sota, Caballo, Rey} {
		c := Card{Rank: rank, Suit: Copas}
		assert.True(t, c.IsFigura())
		assert.Equal(t, 0, c.EnvidoValue())
	}
}

func TestCard_Valid(t *testing.T) {
	assert.True(t, Card{Rank: 1, Suit: Espadas}.Valid())
	assert.False(t, Card{Rank: 8, Suit: Espadas}.Valid())
	assert.False(t, Card{Rank: 9, Suit: Oros}.Valid())
	assert.False(t, Card{Rank: 13, Suit: Oros}.Valid())
	assert.False(t, Card{Rank: 1, Suit: "hearts"}.Valid())
}

func TestParse(t *testing.T) {
	a := assert.New(t)

	c, err := Parse("12o")
	a.NoError(err)
	a.Equal(Card{Rank: 12, Suit: Oros}, c)

	c, err = Parse(" 1E ")
	a.NoError(err)
	a.Equal(Card{Rank: 1, Suit: Espadas}, c)

	for _, bad := range []string{"", "e", "8c", "9b", "13o", "xe", "1h"} {
		_, err := Parse(bad)
		a.ErrorIs(err, ErrInvalidCard, bad)
	}
}

func TestParseHand(t *testing.T) {
	a := assert.New(t)

	hand, err := ParseHand("1e,7e 12o")
	a.NoError(err)
	a.Equal([]Card{{1, Espadas}, {7, Espadas}, {12, Oros}}, hand)

	hand, err = ParseHand("")
	a.NoError(err)
	a.Empty(hand)

	_, err = ParseHand("1e,8e")
	a.ErrorIs(err, ErrInvalidCard)

	a.Panics(func() { MustParseHand("zz") })
}
