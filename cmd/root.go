package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/riffle/internal/config"
	"github.com/arcanaland/riffle/internal/logging"
)

var (
	cfg        *config.Config
	configPath string
	verbose    bool
	log        = logging.Default
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "riffle",
	Short: "Build and riffle-shuffle tarot piles",
	Long: `Riffle builds tarot piles (the standard 78-card deck or the 94-card Silicon Dawn)
and shuffles them the way a person would: cut near the middle, then let small
chunks fall alternately from each half. Shuffles are reproducible from a seed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(logging.DEBUG)
		} else {
			log.SetLevel(logging.WARN)
		}

		path := resolvedConfigPath()
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		log.Debug("loaded config from %s", path)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default $XDG_CONFIG_HOME/riffle/config.toml)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
