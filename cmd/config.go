package cmd

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardplay/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the configuration",
	Long: `Commands for the configuration file. Values can be overridden with
environment variables prefixed with ` + config.EnvPrefix + `, e.g. CARDPLAY_PACKS=2.`,
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", config.GetConfigFilePath())
		return toml.NewEncoder(out).Encode(cfg)
	},
}

// configSetPacksCmd stores the default number of packs
var configSetPacksCmd = &cobra.Command{
	Use:   "set-packs [n]",
	Short: "Set the number of packs in the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packs, err := strconv.Atoi(args[0])
		if err != nil || packs < 1 {
			return fmt.Errorf("packs must be a positive number, got %q", args[0])
		}

		// Environment overrides must not end up in the file.
		stored, err := config.LoadFile()
		if err != nil {
			return err
		}
		stored.Packs = packs
		if err := config.Save(stored); err != nil {
			return err
		}
		cfg.Packs = packs
		fmt.Fprintf(cmd.OutOrStdout(), "Default packs set to: %d\n", packs)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetPacksCmd)
}
