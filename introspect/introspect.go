package introspect

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ExistingColumn is one row of a table's column catalog.
type ExistingColumn struct {
	ColumnName    string
	DataType      string
	IsNullable    bool
	ColumnDefault *string
}

// Catalog answers column queries for a single table, in ordinal order.
type Catalog interface {
	Columns(ctx context.Context, tableName string) ([]ExistingColumn, error)
}

// CatalogError reports a failed or empty catalog lookup.
type CatalogError struct {
	Table string
	Err   error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog lookup for table %q: %v", e.Table, e.Err)
}

func (e *CatalogError) Unwrap() error { return e.Err }

// ErrNoColumns is wrapped in a CatalogError when the catalog knows no columns for a table,
// which is how a missing table presents itself.
var ErrNoColumns = errors.New("table not found or has no columns")

// Introspector fetches normalized column lists from a Catalog.
type Introspector struct {
	catalog Catalog
}

func NewIntrospector(catalog Catalog) *Introspector {
	return &Introspector{catalog: catalog}
}

// FetchColumns returns the columns of tableName in ordinal order with lower-cased data types.
func (i *Introspector) FetchColumns(ctx context.Context, tableName string) ([]ExistingColumn, error) {
	columns, err := i.catalog.Columns(ctx, tableName)
	if err != nil {
		return nil, &CatalogError{Table: tableName, Err: err}
	}
	if len(columns) == 0 {
		return nil, &CatalogError{Table: tableName, Err: ErrNoColumns}
	}

	for idx := range columns {
		columns[idx].DataType = strings.ToLower(strings.TrimSpace(columns[idx].DataType))
	}

	return columns, nil
}

// nullableFlag converts the information_schema "YES"/"NO" flag.
func nullableFlag(flag string) bool {
	return strings.EqualFold(strings.TrimSpace(flag), "YES")
}
