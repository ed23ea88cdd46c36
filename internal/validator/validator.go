package validator

import (
	"fmt"

	"github.com/arcanaland/trucoworld/internal/card"
	"github.com/arcanaland/trucoworld/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid returns true when no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Results ValidationResults
}

func NewValidator() *Validator {
	return &Validator{
		Results: ValidationResults{},
	}
}

// ValidateHand checks that the cards make up a playable hand
func (v *Validator) ValidateHand(cards []card.Card) ValidationResults {
	v.Results = ValidationResults{}

	if len(cards) != deck.HandSize {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("a hand has %d cards, got %d", deck.HandSize, len(cards)))
	}

	v.validateCards(cards)

	if len(v.Results.Errors) > 0 {
		return v.Results
	}

	v.validateEnvidoPair(cards)
	v.validateFiguras(cards)

	return v.Results
}

// ValidateDeck checks that the cards make up a complete Truco deck
func (v *Validator) ValidateDeck(cards []card.Card) ValidationResults {
	v.Results = ValidationResults{}

	if len(cards) != deck.Size {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("a deck has %d cards, got %d", deck.Size, len(cards)))
	}

	v.validateCards(cards)

	// Check for missing cards
	present := make(map[card.Card]bool, len(cards))
	for _, c := range cards {
		present[c] = true
	}

	for _, c := range deck.Build() {
		if !present[c] {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("missing card: %s", c))
		}
	}

	return v.Results
}

// validateCards reports cards outside the deck and duplicates
func (v *Validator) validateCards(cards []card.Card) {
	seen := make(map[card.Card]bool, len(cards))
	for _, c := range cards {
		if !c.Valid() {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("not a Truco card: %s", c))
			continue
		}

		if seen[c] {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("duplicate card: %s", c))
		}
		seen[c] = true
	}
}

// validateEnvidoPair warns when no two cards share a suit
func (v *Validator) validateEnvidoPair(cards []card.Card) {
	suits := make(map[card.Suit]int)
	for _, c := range cards {
		suits[c.Suit]++
	}

	if len(suits) == len(cards) {
		v.Results.Warnings = append(v.Results.Warnings,
			"no two cards share a suit, envido counts the highest card only")
	}
}

// validateFiguras warns when the hand is worth nothing on its own
func (v *Validator) validateFiguras(cards []card.Card) {
	for _, c := range cards {
		if !c.IsFigura() {
			return
		}
	}

	v.Results.Warnings = append(v.Results.Warnings, "every card is a figura")
}
