package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/grimm/core/config"
	grimmlog "github.com/msto63/grimm/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "grimm",
	Short: "grimm - Unicode transcoding and lexing toolkit",
	Long: `grimm is a text processing toolkit built around three primitives:
a Unicode transcoder, a C-like pull lexer, and an stb-style formatter.

Commands:
  transcode - convert files between UTF-8, UTF-16, and UTF-32
  tokens    - stream the tokens of a source file
  patch     - replace a tagged region of a file with external content`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			grimmlog.GetDefault().SetLevel(grimmlog.LevelDebug)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./grimm.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig resolves the --config flag, falling back to discovery of a
// grimm.toml/grimm.yaml next to the working directory. Without either,
// an empty configuration serves the package defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "GRIMM",
		})
	}

	opts := config.DefaultDiscoveryOptions()
	opts.EnvPrefix = "GRIMM"
	return config.Discover(opts)
}
