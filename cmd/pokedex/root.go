package main

import (
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by every command
type options struct {
	configPath  string
	logLevel    string
	generation  int
	metricsAddr string
	jsonOutput  bool
	searchLimit int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "pokedex",
		Short: "Browse the PokéAPI catalog as it was in any generation",
		Long: `pokedex is a terminal viewer for the PokéAPI catalog. Types, abilities and
learnable moves are shown as they were in the selected generation.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pokedex/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.IntVar(&opts.generation, "gen", 0, "generation to view, 1-9 (default from config)")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address while browsing")

	rootCmd.AddCommand(
		newBrowseCmd(opts),
		newShowCmd(opts),
		newMovesCmd(opts),
		newEvolutionCmd(opts),
		newSearchCmd(opts),
		newVersionsCmd(),
	)

	return rootCmd
}
