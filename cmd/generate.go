package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ridoystarlord/crudgen/emitter"
	"github.com/ridoystarlord/crudgen/generator"
	"github.com/ridoystarlord/crudgen/runner"
	"github.com/ridoystarlord/crudgen/utils"
	"github.com/ridoystarlord/crudgen/validator"
)

var (
	outDir              string
	importPrefix        string
	dryRunGenerate      bool
	softDeleteMigration bool
)

func init() {
	generateCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from crudgen.yaml, else src/api/v1)")
	generateCmd.Flags().StringVar(&importPrefix, "import-prefix", "", "Go import path of the output directory (default derived from go.mod)")
	generateCmd.Flags().BoolVar(&dryRunGenerate, "dry-run", false, "Print the generated files without writing them")
	generateCmd.Flags().BoolVar(&softDeleteMigration, "soft-delete-migration", false, "Also write a SQL migration adding the soft-delete column when the table lacks it")
}

var generateCmd = &cobra.Command{
	Use:   "generate <module> <table>",
	Short: "Generate a CRUD module from a table",
	Long: `Generate a CRUD module from a database table.

The module is written to <out>/<module>/ and overwrites any previous output:

  domain/<module>_entity.go
  domain/<module>_repository.go
  application/<module>_usecase.go
  infrastructure/model/<module>_model.go
  infrastructure/repository/<module>_repository.go
  infrastructure/controller/<module>_controller.go
  infrastructure/services/<module>_services.go
  infrastructure/routes/<module>_routes.go

Examples:
  crudgen generate user users                         # Generate from the configured database
  crudgen generate user users --dry-run               # Preview without writing
  crudgen generate user users -o internal/modules     # Custom output directory
  crudgen generate user users --schema-file schema.yaml
`,
	Args: generateArgs,
	RunE: runGenerate,
}

// generateArgs reports missing inputs as configuration errors, before anything connects.
func generateArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 2 {
		return &validator.ConfigurationError{
			Field:   "arguments",
			Message: fmt.Sprintf("expected <module> <table>, got %d values", len(args)),
		}
	}
	return validator.ValidateInvocation(argAt(args, 0), argAt(args, 1))
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if outDir != "" {
		cfg.Project.Output = outDir
	}
	if importPrefix != "" {
		cfg.Project.ImportPrefix = importPrefix
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	prefix, err := cfg.ResolveImportPrefix(cwd)
	if err != nil {
		return err
	}

	engine, err := generator.NewEngine(generator.Options{
		ImportPrefix:     prefix,
		RuntimeImport:    cfg.Project.RuntimeImport,
		SchemaNamespace:  cfg.Database.Schema,
		SoftDeleteColumn: cfg.Project.SoftDeleteColumn,
	})
	if err != nil {
		return err
	}

	var out emitter.Emitter = emitter.NewFileEmitter(cfg.Project.Output)
	if dryRunGenerate {
		out = emitter.NewDryRun(cmd.OutOrStdout())
	}

	r := runner.New(catalogOpener(cfg), engine, out, cfg.Project.SoftDeleteColumn)
	result, err := r.Run(cmd.Context(), runner.Request{
		ModuleName:          args[0],
		TableName:           args[1],
		Dialect:             cfg.Database.Dialect,
		SoftDeleteMigration: softDeleteMigration,
	})
	if err != nil {
		return err
	}

	if dryRunGenerate {
		utils.Info("Dry run only. No files were written.")
		return nil
	}

	utils.Success("Module %s generated from %s (%d columns)", args[0], args[1], len(result.Descriptor.Columns()))
	for _, a := range result.Artifacts {
		fmt.Printf("   📄 %s\n", a.Path)
	}
	if n := len(result.Validation.Warnings); n > 0 {
		utils.Warn("%d warning(s); run with --verbose for details", n)
	}
	return nil
}
