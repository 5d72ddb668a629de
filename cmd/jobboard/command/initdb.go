package command

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jobboard/database"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Clear the existing data and create new tables",
	Long: `init-db drops every table, recreates the schema and loads the song
dataset from SEED_CSV. All posts, comments and accounts are lost.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		db, err := database.Connect(cfg, logger)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.InitDB(cmd.Context(), db, cfg, logger); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "Initialized the database.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initDBCmd)
}
