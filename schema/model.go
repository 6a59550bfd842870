package schema

import (
	"github.com/ridoystarlord/crudgen/introspect"
	"github.com/ridoystarlord/crudgen/typemap"
)

// Column is the normalized metadata of one table column plus its derived type tags.
type Column struct {
	Name            string
	RawType         string
	IsNullable      bool
	DefaultValue    *string
	PersistenceType typemap.PersistenceType
	DomainType      typemap.DomainType
}

// HasDefault reports whether the catalog declared a default value.
func (c Column) HasDefault() bool {
	return c.DefaultValue != nil
}

// Default returns the declared default literal, or "" when there is none.
func (c Column) Default() string {
	if c.DefaultValue == nil {
		return ""
	}
	return *c.DefaultValue
}

// FieldName is the exported Go identifier used for this column.
func (c Column) FieldName() string {
	return toPascalCase(c.Name)
}

// ModuleDescriptor is the single source of truth shared by every rendered artifact.
// Its fields are unexported so it cannot change after construction.
type ModuleDescriptor struct {
	moduleName string
	tableName  string
	columns    []Column
}

// NewModuleDescriptor annotates catalog columns with both type tags, keeping catalog order.
func NewModuleDescriptor(moduleName, tableName string, existing []introspect.ExistingColumn) *ModuleDescriptor {
	columns := make([]Column, 0, len(existing))
	for _, ec := range existing {
		columns = append(columns, Column{
			Name:            ec.ColumnName,
			RawType:         ec.DataType,
			IsNullable:      ec.IsNullable,
			DefaultValue:    copyString(ec.ColumnDefault),
			PersistenceType: typemap.MapPersistenceType(ec.DataType),
			DomainType:      typemap.MapDomainType(ec.DataType),
		})
	}

	return &ModuleDescriptor{
		moduleName: moduleName,
		tableName:  tableName,
		columns:    columns,
	}
}

func (d *ModuleDescriptor) ModuleName() string { return d.moduleName }

func (d *ModuleDescriptor) TableName() string { return d.tableName }

// Columns returns a copy of the ordered column list.
func (d *ModuleDescriptor) Columns() []Column {
	out := make([]Column, len(d.columns))
	for i, c := range d.columns {
		c.DefaultValue = copyString(c.DefaultValue)
		out[i] = c
	}
	return out
}

// PrimaryKey is the first column by convention; there is no catalog-level key detection.
func (d *ModuleDescriptor) PrimaryKey() (Column, bool) {
	if len(d.columns) == 0 {
		return Column{}, false
	}
	return d.Columns()[0], true
}

func (d *ModuleDescriptor) HasColumn(name string) bool {
	for _, c := range d.columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

// TypeName is the capitalized module name every artifact uses as its type prefix.
func (d *ModuleDescriptor) TypeName() string {
	return capitalize(d.moduleName)
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
