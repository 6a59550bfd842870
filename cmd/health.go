package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/ridoystarlord/crudgen/database"
	"github.com/ridoystarlord/crudgen/utils"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check database connectivity",
	Long: `Check if the configured database is accessible and responsive.

Examples:
  crudgen health                    # Check default database connection
  crudgen health --timeout 10s      # Set custom timeout
  crudgen health --dialect sqlite   # Check a sqlite catalog from DB_STORAGE
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), healthTimeout)
		defer cancel()

		conn, err := database.Open(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := conn.Ping(ctx); err != nil {
			return err
		}

		utils.Success("Database is healthy and accessible")
		utils.Info("Dialect %s, schema %q", conn.Dialect(), cfg.Database.Schema)
		return nil
	},
}

var healthTimeout time.Duration

func init() {
	healthCmd.Flags().DurationVarP(&healthTimeout, "timeout", "t", 5*time.Second, "Timeout for health check")
}
