package cmd

import (
	"fmt"
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardplay/internal/config"
	"github.com/arcanaland/cardplay/internal/render"
)

var (
	logger = slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	cfg *config.Config

	verbose bool
	noColor bool
	symbols bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardplay",
	Short: "Tool for building and inspecting hands of playing cards",
	Long: `Cardplay is a command-line tool for working with standard playing cards.
It parses abbreviated cards such as AS or 10h, builds and edits hands,
and stores named hands in TOML files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			pterm.DefaultLogger.Level = pterm.LogLevelDebug
		}

		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		cfg = loaded
		logger.Debug("config loaded", "path", config.GetConfigFilePath(), "packs", cfg.Packs)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured suits")
	RootCmd.PersistentFlags().BoolVar(&symbols, "symbols", false, "Print suits as ♠ ♥ ♦ ♣")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// renderer builds a renderer from the config and global flags
func renderer() render.Renderer {
	return render.ForStdout(cfg.Color && !noColor, cfg.Symbols || symbols)
}
