package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardplay/internal/card"
)

// valuesCmd represents the values command
var valuesCmd = &cobra.Command{
	Use:   "values",
	Short: "List card values in rank order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data := pterm.TableData{{"Ordinal", "Value", "Abbrev"}}
		for v := range card.Values() {
			data = append(data, []string{strconv.Itoa(v.Ordinal()), v.String(), v.Abbrev()})
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return fmt.Errorf("error rendering table: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), table)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(valuesCmd)
}
