package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardplay/internal/card"
	"github.com/arcanaland/cardplay/internal/hand"
	"github.com/arcanaland/cardplay/internal/handfile"
)

// handCmd represents the hand command group
var handCmd = &cobra.Command{
	Use:   "hand",
	Short: "Build and inspect hands of cards",
	Long: `Commands for building and inspecting hands.

A hand is given either as card abbreviations on the command line
(AS 2H, or AS,2H) or by name from a hand file with --name.`,
}

// handFilterCmd represents the hand filter command
var handFilterCmd = &cobra.Command{
	Use:   "filter [cards...]",
	Short: "Print the cards of a hand matching a rank or suit",
	Example: `  cardplay hand filter --rank ace AS KH AC
  cardplay hand filter --suit hearts --name north`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rankFlag, _ := cmd.Flags().GetString("rank")
		suitFlag, _ := cmd.Flags().GetString("suit")
		if (rankFlag == "") == (suitFlag == "") {
			return fmt.Errorf("exactly one of --rank or --suit is required")
		}

		h, err := handFromArgs(cmd, args)
		if err != nil {
			return err
		}

		var matched []card.Card
		if rankFlag != "" {
			v, err := card.ParseValue(rankFlag)
			if err != nil {
				return err
			}
			matched = h.CardsOfRank(v)
		} else {
			s, err := card.ParseSuit(suitFlag)
			if err != nil {
				return err
			}
			matched = h.CardsOfSuit(s)
		}

		logger.Debug("filtered hand", "hand", h.String(), "matched", len(matched))
		fmt.Fprintln(cmd.OutOrStdout(), renderer().Cards(matched, " "))
		return nil
	},
}

// handRemoveCmd represents the hand remove command
var handRemoveCmd = &cobra.Command{
	Use:   "remove [cards...]",
	Short: "Remove cards from a hand and print what is left",
	Long: `Remove takes cards out of a hand. Each --card removes the first
matching card, if the hand holds one; --index removes the card at that
position. With --save the result is written back to the hand file.`,
	Example: `  cardplay hand remove --card AS AS KH AS
  cardplay hand remove --index 0 --name north --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := handFromArgs(cmd, args)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("index") {
			index, _ := cmd.Flags().GetInt("index")
			if index < 0 || index >= h.Len() {
				return fmt.Errorf("index %d out of range for a hand of %d cards", index, h.Len())
			}
			removed := h.Remove(index)
			logger.Debug("removed card", "index", index, "card", removed.String())
		}

		abbrevs, _ := cmd.Flags().GetStringSlice("card")
		toRemove, err := hand.FromStrings(abbrevs)
		if err != nil {
			return err
		}
		h.RemoveCards(toRemove.Cards()...)

		if save, _ := cmd.Flags().GetBool("save"); save {
			if err := saveNamedHand(cmd, h); err != nil {
				return err
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderer().Hand(h))
		return nil
	},
}

// handSaveCmd represents the hand save command
var handSaveCmd = &cobra.Command{
	Use:   "save [name] [cards...]",
	Short: "Store a hand in the hand file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		h, err := hand.FromStrings(splitCards(args[1:]))
		if err != nil {
			return err
		}

		path := handsFilePath(cmd)
		f, err := loadOrCreateHandFile(path)
		if err != nil {
			return err
		}

		// Appending keeps whatever the stored hand already holds.
		if add, _ := cmd.Flags().GetBool("append"); add {
			if _, stored := f.Hands[name]; stored {
				existing, err := f.Hand(name)
				if err != nil {
					return fmt.Errorf("cannot append to stored hand: %w", err)
				}
				existing.AppendHand(h)
				h = existing
			}
		}

		description, _ := cmd.Flags().GetString("description")
		if description == "" {
			description = f.Hands[name].Description
		}
		f.Put(name, h, description)
		if err := f.Save(path); err != nil {
			return err
		}

		logger.Info("hand saved", "name", name, "cards", h.Len(), "file", path)
		return nil
	},
}

// handListCmd represents the hand list command
var handListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the hands in the hand file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := handsFilePath(cmd)
		f, err := handfile.Load(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(f.Hands) == 0 {
			fmt.Fprintln(out, "No hands found in", path)
			return nil
		}

		r := renderer()
		for _, name := range f.Names() {
			h, err := f.Hand(name)
			if err != nil {
				fmt.Fprintf(out, "  %s (invalid: %v)\n", name, err)
				continue
			}
			fmt.Fprintf(out, "  %s [%d] %s\n", name, h.Len(), r.Hand(h))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(handCmd)
	handCmd.AddCommand(handShowCmd)
	handCmd.AddCommand(handFilterCmd)
	handCmd.AddCommand(handRemoveCmd)
	handCmd.AddCommand(handSaveCmd)
	handCmd.AddCommand(handListCmd)

	handCmd.PersistentFlags().StringP("file", "f", "", "Hand file to read (defaults to hands_file from the config)")
	handCmd.PersistentFlags().StringP("name", "n", "", "Name of a hand in the hand file")

	handFilterCmd.Flags().String("rank", "", "Keep cards of this rank (A, 10, queen, ...)")
	handFilterCmd.Flags().String("suit", "", "Keep cards of this suit (S, hearts, ♦, ...)")

	handRemoveCmd.Flags().StringSliceP("card", "c", nil, "Card to remove; may be repeated")
	handRemoveCmd.Flags().IntP("index", "i", 0, "Position of a card to remove")
	handRemoveCmd.Flags().Bool("save", false, "Write the result back to the named hand")

	handSaveCmd.Flags().StringP("description", "d", "", "Description stored with the hand")
	handSaveCmd.Flags().Bool("append", false, "Add the cards to the stored hand instead of replacing it")
}

// handFromArgs builds the hand named by --name, or parses the arguments
func handFromArgs(cmd *cobra.Command, args []string) (*hand.Hand, error) {
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		return hand.FromStrings(splitCards(args))
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("cards cannot be given together with --name")
	}

	f, err := handfile.Load(handsFilePath(cmd))
	if err != nil {
		return nil, err
	}
	return f.Hand(name)
}

// saveNamedHand writes h back under --name
func saveNamedHand(cmd *cobra.Command, h *hand.Hand) error {
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		return fmt.Errorf("--save requires --name")
	}
	path := handsFilePath(cmd)
	f, err := handfile.Load(path)
	if err != nil {
		return err
	}
	f.Put(name, h, f.Hands[name].Description)
	return f.Save(path)
}

// handsFilePath returns --file or the configured default
func handsFilePath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		return path
	}
	return cfg.HandsFile
}

func loadOrCreateHandFile(path string) (*handfile.File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &handfile.File{}, nil
	}
	return handfile.Load(path)
}

// splitCards accepts both "AS 2H" and "AS,2H" forms
func splitCards(args []string) []string {
	var cards []string
	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cards = append(cards, s)
			}
		}
	}
	return cards
}
