package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/crudgen/runner"
	"github.com/ridoystarlord/crudgen/validator"
)

var columnsCmd = &cobra.Command{
	Use:   "columns <table>",
	Short: "Show a table's columns and their mapped types",
	Long: `Show the columns crudgen reads for a table, in catalog order, with the
persistence and domain types each one maps to. The first column is used as
the primary key.

Examples:
  crudgen columns users
  crudgen columns users --dialect postgres
`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return &validator.ConfigurationError{Field: "table name", Message: "is required"}
		}
		return validator.ValidateTableName(args[0])
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		catalog, release, err := catalogOpener(cfg)(cmd.Context())
		if err != nil {
			return err
		}
		defer release()

		desc, err := runner.Describe(cmd.Context(), catalog, args[0], args[0])
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header("#", "Column", "Type", "Nullable", "Default", "Persistence", "Domain", "Go Field")
		for i, col := range desc.Columns() {
			def := "-"
			if col.HasDefault() {
				def = col.Default()
			}
			name := col.Name
			if i == 0 {
				name += " (pk)"
			}
			if err := table.Append([]string{
				strconv.Itoa(i + 1),
				name,
				col.RawType,
				strconv.FormatBool(col.IsNullable),
				def,
				string(col.PersistenceType),
				string(col.DomainType),
				col.FieldName() + " " + col.DomainType.GoType(),
			}); err != nil {
				return fmt.Errorf("rendering columns: %w", err)
			}
		}
		return table.Render()
	},
}
