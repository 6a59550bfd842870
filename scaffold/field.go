package scaffold

// DataType is the persistence type tag of a generated model field.
type DataType string

const (
	Integer DataType = "INTEGER"
	String  DataType = "STRING"
	Date    DataType = "DATE"
	Boolean DataType = "BOOLEAN"
	Float   DataType = "FLOAT"
	Decimal DataType = "DECIMAL"
)

// Field describes one column of a generated persistence model.
type Field struct {
	Name         string
	Type         DataType
	AllowNull    bool
	PrimaryKey   bool
	DefaultValue *string
}

// Table binds a generated persistence model to its table.
type Table struct {
	Name       string
	Schema     string
	Timestamps bool
	Fields     []Field
}

// Default wraps a catalog default literal for use in a Field.
func Default(literal string) *string {
	return &literal
}

// QualifiedName is "schema.table", or just the table name when no schema is bound.
func (t Table) QualifiedName() string {
	if t.Schema == "" {
		return t.Name
	}
	return t.Schema + "." + t.Name
}

// PrimaryKey returns the field flagged as primary key.
func (t Table) PrimaryKey() (Field, bool) {
	for _, f := range t.Fields {
		if f.PrimaryKey {
			return f, true
		}
	}
	return Field{}, false
}

// Field returns the field bound to column name.
func (t Table) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Writable keeps the known non-key columns of names, in table order.
func (t Table) Writable(names []string) []string {
	requested := make(map[string]bool, len(names))
	for _, n := range names {
		requested[n] = true
	}

	var out []string
	for _, f := range t.Fields {
		if requested[f.Name] && !f.PrimaryKey {
			out = append(out, f.Name)
		}
	}
	return out
}
