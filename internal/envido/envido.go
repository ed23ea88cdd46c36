// Package envido computes the envido points of a Truco hand.
//
// Cards of the same suit pair up: the two highest envido values of a suit are added
// together with a bonus of 20. A hand with no two cards of the same suit is worth its
// single highest card.
package envido

import (
	"errors"
	"fmt"
	"sort"

	"github.com/arcanaland/trucoworld/internal/card"
	"github.com/arcanaland/trucoworld/internal/deck"
)

// Bonus is added when two cards of the same suit are combined
const Bonus = 20

// Max is the best envido possible (7 and 6 of the same suit)
const Max = 7 + 6 + Bonus

// ErrMalformedHand is returned when the hand is not three distinct, valid cards
var ErrMalformedHand = errors.New("malformed hand")

// Result explains how an envido score was obtained
type Result struct {
	Points int
	// Suit is the suit of the winning pair, empty if no suit is repeated
	Suit card.Suit
	// Cards are the cards that contributed to the points
	Cards []card.Card
}

// Score returns the envido points of a hand
func Score(hand []card.Card) (int, error) {
	r, err := Breakdown(hand)
	if err != nil {
		return 0, err
	}

	return r.Points, nil
}

// Breakdown returns the envido points of a hand along with the cards that produced them
func Breakdown(hand []card.Card) (Result, error) {
	if err := checkHand(hand); err != nil {
		return Result{}, err
	}

	bySuit := make(map[card.Suit][]card.Card)
	for _, c := range hand {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}

	var best Result
	found := false

	// iterate in a fixed order so ties always resolve to the same suit
	for _, suit := range card.Suits {
		group := bySuit[suit]
		if len(group) < 2 {
			continue
		}

		top := topTwo(group)
		points := top[0].EnvidoValue() + top[1].EnvidoValue() + Bonus
		if !found || points > best.Points {
			best = Result{Points: points, Suit: suit, Cards: top}
			found = true
		}
	}

	if found {
		return best, nil
	}

	high := hand[0]
	for _, c := range hand[1:] {
		if c.EnvidoValue() > high.EnvidoValue() {
			high = c
		}
	}

	return Result{Points: high.EnvidoValue(), Cards: []card.Card{high}}, nil
}

// topTwo returns the two cards of the group with the highest envido value
func topTwo(group []card.Card) []card.Card {
	sorted := make([]card.Card, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EnvidoValue() > sorted[j].EnvidoValue()
	})

	return sorted[:2]
}

func checkHand(hand []card.Card) error {
	if len(hand) != deck.HandSize {
		return fmt.Errorf("%w: expected %d cards, got %d", ErrMalformedHand, deck.HandSize, len(hand))
	}

	seen := make(map[card.Card]bool, len(hand))
	for _, c := range hand {
		if !c.Valid() {
			return fmt.Errorf("%w: %s is not a Truco card", ErrMalformedHand, c)
		}

		if seen[c] {
			return fmt.Errorf("%w: %s appears twice", ErrMalformedHand, c)
		}
		seen[c] = true
	}

	return nil
}
