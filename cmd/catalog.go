package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ridoystarlord/crudgen/config"
	"github.com/ridoystarlord/crudgen/database"
	"github.com/ridoystarlord/crudgen/introspect"
	"github.com/ridoystarlord/crudgen/loader"
	"github.com/ridoystarlord/crudgen/runner"
)

// loadConfig merges environment, project file and the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}

	if dialectFlag != "" {
		dialect, err := config.ParseDialect(dialectFlag)
		if err != nil {
			return nil, err
		}
		cfg.WithDialect(dialect)
	}
	return cfg, nil
}

// catalogOpener defers connecting until the runner has validated its inputs.
func catalogOpener(cfg *config.Config) runner.CatalogOpener {
	return func(ctx context.Context) (introspect.Catalog, func(), error) {
		if schemaFile != "" {
			catalog, err := loader.LoadCatalogFromYAML(schemaFile)
			if err != nil {
				return nil, nil, err
			}
			return catalog, func() {}, nil
		}

		conn, err := database.Open(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return conn, conn.Close, nil
	}
}
