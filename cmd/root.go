package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/crudgen/config"
	"github.com/ridoystarlord/crudgen/utils"
	"github.com/ridoystarlord/crudgen/validator"
)

var (
	configFile  string
	dialectFlag string
	schemaFile  string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "crudgen",
	Short: "Generate layered CRUD modules from database tables",
	Long: `crudgen reads a table's columns from the database catalog and writes a
complete module for it: entity, persistence model, use-case, repository,
controller, service wiring and routes.

Examples:

  crudgen generate user users
  crudgen columns users
  crudgen health
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		utils.Fail("%v", err)

		var cfgErr *validator.ConfigurationError
		if errors.As(err, &cfgErr) {
			fmt.Fprintln(os.Stderr, "   Run 'crudgen --help' for usage.")
		}
		stop()
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.WarnLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// Register subcommands
func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFile, "Project config file")
	rootCmd.PersistentFlags().StringVarP(&dialectFlag, "dialect", "d", "", "Database dialect: mssql, postgres or sqlite (default from DB_DIALECT)")
	rootCmd.PersistentFlags().StringVar(&schemaFile, "schema-file", "", "Read columns from a YAML schema file instead of the database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(healthCmd)
}
