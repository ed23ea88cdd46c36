package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/arcanaland/trucoworld/internal/card"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	cardWidth  = 13
	cardHeight = 7
)

var showCmd = &cobra.Command{
	Use:   "show [cards...]",
	Short: "Draw cards in the terminal",
	Long: `Show draws one or more cards in the terminal, colored by suit.
Cards are laid out side by side as long as they fit in the terminal width.

Examples:
  trucoworld show 1e
  trucoworld show 1e 7e 12o`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := card.ParseHand(strings.Join(args, ","))
		if err != nil {
			return err
		}

		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80 // Default if we can't get terminal width
		}

		out := cmd.OutOrStdout()
		if len(cards) == 1 {
			displayCard(out, cards[0], width)
			return nil
		}

		displayRow(out, cards, width)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// drawCard returns the lines of a card frame
func drawCard(c card.Card) []string {
	rank := fmt.Sprintf("%d", c.Rank)
	inner := cardWidth - 2

	lines := make([]string, 0, cardHeight)
	lines = append(lines, "┌"+strings.Repeat("─", inner)+"┐")
	lines = append(lines, "│"+rank+strings.Repeat(" ", inner-len(rank))+"│")
	lines = append(lines, "│"+strings.Repeat(" ", inner)+"│")
	lines = append(lines, "│"+center(string(c.Suit), inner)+"│")
	lines = append(lines, "│"+strings.Repeat(" ", inner)+"│")
	lines = append(lines, "│"+strings.Repeat(" ", inner-len(rank))+rank+"│")
	lines = append(lines, "└"+strings.Repeat("─", inner)+"┘")

	for i, line := range lines {
		lines[i] = paint(c.Suit, line)
	}

	return lines
}

// center pads s on both sides to width
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}

	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

// displayCard draws the card with its details on the right
func displayCard(w io.Writer, c card.Card, width int) {
	art := drawCard(c)

	infoLines := []string{
		colorize.CyanString("Card:   ") + colorize.HiWhiteString("%s", c.String()),
		colorize.CyanString("Suit:   ") + paint(c.Suit, string(c.Suit)),
		colorize.CyanString("Rank:   ") + colorize.HiWhiteString("%d", c.Rank),
		colorize.CyanString("Envido: ") + colorize.HiWhiteString("%d", c.EnvidoValue()),
	}
	if c.IsFigura() {
		infoLines = append(infoLines, colorize.HiBlackString("figura"))
	}

	spacing := 4
	showInfo := width >= cardWidth+spacing+20

	fmt.Fprintln(w)
	for i := 0; i < max(len(art), len(infoLines)); i++ {
		fmt.Fprint(w, "  ")
		if i < len(art) {
			fmt.Fprint(w, art[i])
		} else {
			fmt.Fprint(w, strings.Repeat(" ", cardWidth))
		}

		if showInfo && i < len(infoLines) {
			fmt.Fprint(w, strings.Repeat(" ", spacing), infoLines[i])
		}

		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// displayRow draws as many cards per row as fit in width
func displayRow(w io.Writer, cards []card.Card, width int) {
	perRow := (width - 2) / (cardWidth + 1)
	if perRow < 1 {
		perRow = 1
	}

	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))

		arts := make([][]string, 0, end-start)
		for _, c := range cards[start:end] {
			arts = append(arts, drawCard(c))
		}

		for line := 0; line < cardHeight; line++ {
			row := make([]string, len(arts))
			for i, art := range arts {
				row[i] = art[line]
			}

			fmt.Fprintln(w, "  "+strings.Join(row, " "))
		}
	}
}
