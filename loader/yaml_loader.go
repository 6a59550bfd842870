package loader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ridoystarlord/crudgen/introspect"
)

type yamlFile struct {
	Tables []yamlTable `yaml:"tables"`
}

type yamlTable struct {
	Name    string       `yaml:"name"`
	Columns []yamlColumn `yaml:"columns"`
}

type yamlColumn struct {
	Name     string  `yaml:"name"`
	Type     string  `yaml:"type"`
	Nullable bool    `yaml:"nullable"`
	Default  *string `yaml:"default"`
}

// YAMLCatalog serves column metadata from a schema file, for generating without a live database.
// Column order in the file stands in for ordinal position.
type YAMLCatalog struct {
	tables []yamlTable
}

var _ introspect.Catalog = (*YAMLCatalog)(nil)

// LoadCatalogFromYAML reads a schema file of the form
//
//	tables:
//	  - name: users
//	    columns:
//	      - {name: id, type: int}
//	      - {name: name, type: varchar, nullable: true}
func LoadCatalogFromYAML(filename string) (*YAMLCatalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	var yf yamlFile
	if err := yaml.Unmarshal(data, &yf); err != nil {
		return nil, fmt.Errorf("unmarshalling YAML: %w", err)
	}

	seen := make(map[string]bool, len(yf.Tables))
	for _, t := range yf.Tables {
		if t.Name == "" {
			return nil, fmt.Errorf("schema file %s: table without a name", filename)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("schema file %s: table %q defined twice", filename, t.Name)
		}
		seen[t.Name] = true
	}

	return &YAMLCatalog{tables: yf.Tables}, nil
}

// Columns returns the columns of tableName, or none when the file does not define it.
func (c *YAMLCatalog) Columns(ctx context.Context, tableName string) ([]introspect.ExistingColumn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, t := range c.tables {
		if t.Name != tableName {
			continue
		}

		columns := make([]introspect.ExistingColumn, 0, len(t.Columns))
		for _, col := range t.Columns {
			columns = append(columns, introspect.ExistingColumn{
				ColumnName:    col.Name,
				DataType:      col.Type,
				IsNullable:    col.Nullable,
				ColumnDefault: col.Default,
			})
		}
		return columns, nil
	}
	return nil, nil
}

// Tables lists the table names in file order.
func (c *YAMLCatalog) Tables() []string {
	names := make([]string, 0, len(c.tables))
	for _, t := range c.tables {
		names = append(names, t.Name)
	}
	return names
}
