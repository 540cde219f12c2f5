// Command fixedarray exercises fixedarray.Array on integer lists given on
// the command line.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const appName = "fixedarray"

// app carries what the persistent pre-run resolved for the subcommands.
type app struct {
	configPath string
	cfg        Config
	log        zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   appName,
		Short: "Build, compare and inspect fixed-length integer arrays.",
		Long: `fixedarray builds fixed-length arrays from separator-delimited integer ` +
			`lists and reports comparisons, fills, reverse traversal and checked access.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = initLogger(appName, cfg.level(), cmd.ErrOrStderr())
			a.log.Debug().Str("config", a.configPath).Str("output", cfg.Output).Msg("config loaded")
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")

	root.AddCommand(
		newCompareCmd(a),
		newFillCmd(a),
		newReverseCmd(a),
		newAtCmd(a),
	)
	return root
}

// Execute runs the root command and exits 1 on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
