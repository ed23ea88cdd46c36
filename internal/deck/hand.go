package deck

import (
	"strings"

	"github.com/arcanaland/trucoworld/internal/card"
)

// HandSize is the number of cards each participant receives
const HandSize = 3

// Hand represents the cards held by a participant
type Hand []card.Card

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(c card.Card) bool {
	for _, held := range h {
		if held == c {
			return true
		}
	}

	return false
}

// String returns the hand in compact notation, e.g., 1e,7e,12o
func (h Hand) String() string {
	s := make([]string, len(h))
	for i, c := range h {
		s[i] = c.Short()
	}

	return strings.Join(s, ",")
}
