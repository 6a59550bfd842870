package generator

import (
	"fmt"
	"strings"

	"github.com/ridoystarlord/crudgen/config"
	"github.com/ridoystarlord/crudgen/schema"
)

// GenerateSoftDeleteSQL returns the statements adding the soft-delete flag column to a
// table, and the statements undoing it in reverse order.
func GenerateSoftDeleteSQL(dialect config.Dialect, namespace, table, column string) ([]string, []string) {
	var up, down []string

	switch dialect {
	case config.Postgres:
		target := qualify(quoteDouble, namespace, table)
		up = append(up, fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s BOOLEAN NOT NULL DEFAULT FALSE;`,
			target,
			quoteDouble(column),
		))
		down = append(down, fmt.Sprintf(`ALTER TABLE %s DROP COLUMN IF EXISTS %s;`,
			target,
			quoteDouble(column),
		))

	case config.SQLite:
		target := quoteDouble(table)
		up = append(up, fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s BIT NOT NULL DEFAULT 0;`,
			target,
			quoteDouble(column),
		))
		down = append(down, fmt.Sprintf(`ALTER TABLE %s DROP COLUMN %s;`,
			target,
			quoteDouble(column),
		))

	default:
		target := qualify(quoteBracket, namespace, table)
		constraint := quoteBracket(fmt.Sprintf("DF_%s_%s", table, column))
		up = append(up, fmt.Sprintf(`ALTER TABLE %s ADD %s BIT NOT NULL CONSTRAINT %s DEFAULT 0;`,
			target,
			quoteBracket(column),
			constraint,
		))
		// The default constraint has to go before the column can be dropped.
		down = append(down,
			fmt.Sprintf(`ALTER TABLE %s DROP CONSTRAINT %s;`, target, constraint),
			fmt.Sprintf(`ALTER TABLE %s DROP COLUMN %s;`, target, quoteBracket(column)),
		)
	}

	return up, down
}

// FormatMigration lays statements out as an up/down migration script.
func FormatMigration(title string, up, down []string) string {
	var b strings.Builder

	b.WriteString("-- Migration: " + title + "\n")
	b.WriteString("-- Description: Generated by crudgen\n\n")

	b.WriteString("-- Up Migration\n")
	b.WriteString("-- ============\n")
	for _, stmt := range up {
		b.WriteString(stmt + "\n")
	}

	b.WriteString("\n-- Down Migration (Rollback)\n")
	b.WriteString("-- =======================\n")
	for _, stmt := range down {
		b.WriteString(stmt + "\n")
	}

	return b.String()
}

// RenderSoftDeleteMigration renders infrastructure/migrations/<module>_soft_delete.sql for a
// table that lacks the soft-delete column. ok is false when the column already exists.
func (e *Engine) RenderSoftDeleteMigration(desc *schema.ModuleDescriptor, dialect config.Dialect) (Artifact, bool, error) {
	data, err := e.newTemplateData(desc)
	if err != nil {
		return Artifact{}, false, err
	}
	if desc.HasColumn(e.opts.SoftDeleteColumn) {
		return Artifact{}, false, nil
	}

	up, down := GenerateSoftDeleteSQL(dialect, e.opts.SchemaNamespace, data.Table, e.opts.SoftDeleteColumn)
	content := FormatMigration(fmt.Sprintf("%s soft delete", data.Module), up, down)

	return Artifact{
		Kind:    KindMigration,
		Path:    ArtifactPath(data.Module, "infrastructure/migrations", "soft_delete", ".sql"),
		Content: []byte(content),
	}, true, nil
}

func qualify(quote func(string) string, namespace, name string) string {
	if namespace == "" {
		return quote(name)
	}
	return quote(namespace) + "." + quote(name)
}

func quoteDouble(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteBracket(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}
