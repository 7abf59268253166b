package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarefinport/sarefinport/pkg/cli/internal/output"
)

// MigrateOutput represents JSON output format
type MigrateOutput struct {
	Driver string `json:"driver"`
	Status string `json:"status"`
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := newLogger(cfg, cmd.ErrOrStderr())

		st, err := openStore(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		if err := st.Close(); err != nil {
			output.Warn(cmd.ErrOrStderr(), "close database: %v", err)
		}

		out := MigrateOutput{Driver: cfg.Database.Driver, Status: "migrated"}
		if jsonOutput {
			return output.JSON(cmd.OutOrStdout(), out)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Schema migrated (%s)\n", out.Driver)
		return nil
	},
}

func init() {
	addDatabaseFlags(migrateCmd)
	rootCmd.AddCommand(migrateCmd)
}
