package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardplay/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a hand file or deck definition",
	Long: `Validate checks that a hand file parses and that every card in it is a
valid abbreviation. With --deck, path is a directory holding a deck.toml
definition instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		// Check if path exists
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("not found: %s", path)
		}

		v := validator.NewValidator(path)
		var results validator.ValidationResults
		var err error
		if isDeck, _ := cmd.Flags().GetBool("deck"); isDeck {
			results, err = v.ValidateDeck()
		} else {
			results, err = v.Validate()
		}
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintln(out, colorize.GreenString("'%s' is valid.", path))
		} else {
			fmt.Fprintln(out, colorize.RedString("'%s' has %d validation errors:", path, len(results.Errors)))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, colorize.YellowString("\nWarnings:"))
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("deck", false, "Validate a deck definition directory")
}
