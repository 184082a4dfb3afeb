package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardplay/internal/card"
	"github.com/arcanaland/cardplay/internal/config"
	"github.com/arcanaland/cardplay/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect decks of standard playing cards",
	Long:  `Commands for inspecting standard decks and deck definitions.`,
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print a standard deck, or a deck defined in a directory",
	Long: `Show prints every card of a deck grouped by suit.

Without a path the standard deck is used, with the number of packs taken
from the config (or --packs). With a path, the deck is loaded from the
deck.toml in that directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var d *deck.Deck
		if len(args) == 1 {
			loaded, err := deck.LoadDeck(args[0])
			if err != nil {
				return fmt.Errorf("error loading deck: %w", err)
			}
			d = loaded
		} else {
			packs := cfg.Packs
			if cmd.Flags().Changed("packs") {
				packs, _ = cmd.Flags().GetInt("packs")
			}
			d = deck.New(packs)
		}

		if sorted, _ := cmd.Flags().GetBool("sort"); sorted {
			card.SortByRank(d)
		}

		logger.Debug("deck built", "id", d.ID, "cards", d.Len())

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%d cards, %d pack(s))\n", d.Name, d.Len(), d.Packs)
		if reason := d.ExcludedReason(); reason != "" {
			fmt.Fprintf(out, "Excluded: %s\n", reason)
		}

		r := renderer()
		data := pterm.TableData{{"Suit", "Cards"}}
		for s := range card.Suits() {
			data = append(data, []string{s.String(), r.Cards(card.CardsOfSuit(d.Cards(), s), " ")})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return fmt.Errorf("error rendering table: %w", err)
		}
		fmt.Fprintln(out, table)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the data directory with a standard deck definition",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := filepath.Join(config.GetDataPath(), "decks", "standard")

		// Create the deck directory if it doesn't exist
		if err := os.MkdirAll(deckPath, 0755); err != nil {
			return fmt.Errorf("error creating deck directory: %w", err)
		}

		deckTomlPath := filepath.Join(deckPath, "deck.toml")
		if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
			if err := os.WriteFile(deckTomlPath, []byte(standardDeckToml), 0644); err != nil {
				return fmt.Errorf("error writing deck.toml: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Deck definition initialized at:", deckTomlPath)
		fmt.Fprintln(out, "Config file at:", config.GetConfigFilePath())
		return nil
	},
}

const standardDeckToml = `[deck]
id = "standard"
name = "Standard"
description = "One standard pack of 52 cards"
packs = 1
`

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckInitCmd)

	deckShowCmd.Flags().IntP("packs", "p", 1, "Number of standard packs")
	deckShowCmd.Flags().BoolP("sort", "s", false, "Order cards by rank instead of the pack order")
}
