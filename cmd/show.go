package cmd

import (
	"fmt"
	"io"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardplay/internal/card"
	"github.com/arcanaland/cardplay/internal/hand"
	"github.com/arcanaland/cardplay/internal/render"
)

var handShowCmd = &cobra.Command{
	Use:   "show [cards...]",
	Short: "Display a hand",
	Long: `Show displays a hand of cards given as abbreviations or by name
from a hand file.

Examples:
  cardplay hand show AS 2H KD
  cardplay hand show --sort AS,KH,AC
  cardplay hand show --long --name north`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := handFromArgs(cmd, args)
		if err != nil {
			return err
		}

		if sorted, _ := cmd.Flags().GetBool("sort"); sorted {
			h.Sort()
		}

		long, _ := cmd.Flags().GetBool("long")
		displayHand(cmd.OutOrStdout(), h, renderer(), long)
		return nil
	},
}

func init() {
	handShowCmd.Flags().BoolP("sort", "s", false, "Sort the hand by rank before printing")
	handShowCmd.Flags().BoolP("long", "l", false, "Print each card's full name and a breakdown by suit")
}

// displayHand prints a hand, optionally with per-card and per-suit details
func displayHand(out io.Writer, h *hand.Hand, r render.Renderer, long bool) {
	if !long {
		fmt.Fprintln(out, r.Hand(h))
		return
	}

	label := colorize.New(colorize.FgCyan)
	if r.Color {
		label.EnableColor()
	} else {
		label.DisableColor()
	}

	fmt.Fprintln(out, label.Sprint("Cards: ")+fmt.Sprint(h.Len()))
	for i, c := range h.Cards() {
		fmt.Fprintf(out, "%3d. %s  %s\n", i, r.Card(c), c.Name())
	}

	fmt.Fprintln(out)
	for s := range card.Suits() {
		cards := h.CardsOfSuit(s)
		if len(cards) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s %s\n", label.Sprintf("%-9s", s.String()+":"), r.Cards(cards, " "))
	}
}
