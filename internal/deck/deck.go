package deck

import (
	"errors"

	"github.com/arcanaland/trucoworld/internal/card"
	"github.com/arcanaland/trucoworld/internal/rng"
)

// Size is the number of cards in a Truco deck
const Size = 40

// ErrEndOfDeck is an error when Pop() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents the Spanish deck, without eights and nines
type Deck struct {
	cards []card.Card
}

// New returns a shuffled 40-card deck.
// If gen is nil, a crypto/rand backed generator is used.
func New(gen rng.Generator) *Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	d := &Deck{cards: Build()}
	d.shuffle(gen)
	return d
}

// Build returns every suit and rank combination exactly once, unshuffled
func Build() []card.Card {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.Card{Rank: rank, Suit: suit})
		}
	}

	return cards
}

func (d *Deck) shuffle(gen rng.Generator) {
	for j := len(d.cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Pop removes the card on top of the deck (the last one in the sequence)
// If there are no more cards, an ErrEndOfDeck is returned.
func (d *Deck) Pop() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrEndOfDeck
	}

	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards = d.cards[:last]

	return c, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() []card.Card {
	cp := make([]card.Card, len(d.cards))
	copy(cp, d.cards)
	return cp
}
