package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card cannot be parsed or is not part of the deck
var ErrInvalidCard = errors.New("invalid card")

// Suit represents one of the four Spanish suits
type Suit string

// suit constants
const (
	Espadas Suit = "espadas"
	Bastos  Suit = "bastos"
	Oros    Suit = "oros"
	Copas   Suit = "copas"
)

// Suits lists the suits in deck-building order
var Suits = []Suit{Espadas, Bastos, Oros, Copas}

// Ranks lists the ranks of the Spanish deck used in Truco (8 and 9 are removed)
var Ranks = []int{1, 2, 3, 4, 5, 6, 7, 10, 11, 12}

// figuras
const (
	Sota    = 10
	Caballo = 11
	Rey     = 12
)

// Card represents a Truco card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	return fmt.Sprintf("%d de %s", c.Rank, c.Suit)
}

// Short returns the compact notation of the card (e.g., 12o)
func (c Card) Short() string {
	if c.Suit == "" {
		return strconv.Itoa(c.Rank)
	}

	return fmt.Sprintf("%d%s", c.Rank, string(c.Suit)[:1])
}

// IsFigura returns true for the sota, caballo and rey
func (c Card) IsFigura() bool {
	return c.Rank >= Sota
}

// EnvidoValue returns what the card is worth when counting envido.
// Figuras are worth nothing, 1 through 7 keep their face value.
func (c Card) EnvidoValue() int {
	if c.IsFigura() {
		return 0
	}

	return c.Rank
}

// Valid returns true if the card belongs to the 40-card deck
func (c Card) Valid() bool {
	return validRank(c.Rank) && validSuit(c.Suit)
}

func validRank(rank int) bool {
	for _, r := range Ranks {
		if r == rank {
			return true
		}
	}

	return false
}

func validSuit(suit Suit) bool {
	for _, s := range Suits {
		if s == suit {
			return true
		}
	}

	return false
}

// Parse returns a card from its compact notation: <rank><suit letter>, where the suit
// letter is one of e (espadas), b (bastos), o (oros) or c (copas)
func Parse(s string) (Card, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q has no rank", ErrInvalidCard, s)
	}

	var suit Suit
	switch s[len(s)-1] {
	case 'e':
		suit = Espadas
	case 'b':
		suit = Bastos
	case 'o':
		suit = Oros
	case 'c':
		suit = Copas
	default:
		return Card{}, fmt.Errorf("%w: %q has an unknown suit", ErrInvalidCard, s)
	}

	c := Card{Rank: rank, Suit: suit}
	if !c.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d is not in the deck", ErrInvalidCard, rank)
	}

	return c, nil
}

// ParseHand parses a list of cards separated by commas or whitespace (e.g., 1e,7e,12o)
func ParseHand(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}

	return cards, nil
}

// MustParseHand is like ParseHand but panics on error. Meant for tests and literals.
func MustParseHand(s string) []Card {
	cards, err := ParseHand(s)
	if err != nil {
		panic(err)
	}

	return cards
}
