package cmd

import (
	"strings"

	"github.com/arcanaland/trucoworld/internal/card"
	colorize "github.com/fatih/color"
)

var suitColors = map[card.Suit]*colorize.Color{
	card.Espadas: colorize.New(colorize.FgBlue, colorize.Bold),
	card.Bastos:  colorize.New(colorize.FgGreen, colorize.Bold),
	card.Oros:    colorize.New(colorize.FgYellow, colorize.Bold),
	card.Copas:   colorize.New(colorize.FgRed, colorize.Bold),
}

// paint returns s in the color of the suit
func paint(suit card.Suit, s string) string {
	if c, ok := suitColors[suit]; ok {
		return c.Sprint(s)
	}

	return s
}

// formatCards renders cards as "1 de espadas, 7 de espadas" in suit colors
func formatCards(cards []card.Card) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = paint(c.Suit, c.String())
	}

	return strings.Join(s, ", ")
}
