package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"jobboard/internal/config"
	"jobboard/pkg/logging"
)

var envFile string // .env file merged into the environment

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jobboard",
	Short: "jobboard - a small job board with comments, lyrics search and translation",
	Long: `jobboard serves a job board web application. Users can:
- Publish, edit and delete job posts
- Comment on posts
- Search song lyrics
- Translate their posts

Run "jobboard init-db" once to create the database, then "jobboard serve".`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "environment file to load")
}

// setup loads and validates the configuration and installs the default logger.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)
	return cfg, logger, nil
}
