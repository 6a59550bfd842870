package introspect

import (
	"context"
	"database/sql"
	"fmt"
)

const sqlServerColumnsQuery = `
	SELECT
		COLUMN_NAME,
		DATA_TYPE,
		IS_NULLABLE,
		COLUMN_DEFAULT
	FROM INFORMATION_SCHEMA.COLUMNS
	WHERE (@p1 = '' OR TABLE_SCHEMA = @p1) AND TABLE_NAME = @p2
	ORDER BY ORDINAL_POSITION;
`

// SQLite has no information_schema; pragma_table_info carries the same facts.
const sqliteColumnsQuery = `
	SELECT
		name,
		type,
		CASE WHEN "notnull" = 1 THEN 'NO' ELSE 'YES' END,
		dflt_value
	FROM pragma_table_info(?)
	ORDER BY cid;
`

// SQLCatalog reads column metadata through database/sql for SQL Server and SQLite.
type SQLCatalog struct {
	db     *sql.DB
	query  string
	schema string
	scoped bool
}

// NewSQLServerCatalog expects a *sql.DB opened with the "sqlserver" driver.
func NewSQLServerCatalog(db *sql.DB, schema string) *SQLCatalog {
	return &SQLCatalog{db: db, query: sqlServerColumnsQuery, schema: schema, scoped: true}
}

// NewSQLiteCatalog expects a *sql.DB opened with the "sqlite3" driver.
func NewSQLiteCatalog(db *sql.DB) *SQLCatalog {
	return &SQLCatalog{db: db, query: sqliteColumnsQuery}
}

func (c *SQLCatalog) Columns(ctx context.Context, tableName string) ([]ExistingColumn, error) {
	args := []any{tableName}
	if c.scoped {
		args = []any{c.schema, tableName}
	}

	rows, err := c.db.QueryContext(ctx, c.query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	defer rows.Close()

	var columns []ExistingColumn
	for rows.Next() {
		var (
			col      ExistingColumn
			nullable string
			dflt     sql.NullString
		)
		if err := rows.Scan(&col.ColumnName, &col.DataType, &nullable, &dflt); err != nil {
			return nil, fmt.Errorf("scanning column: %w", err)
		}
		col.IsNullable = nullableFlag(nullable)
		if dflt.Valid {
			value := dflt.String
			col.ColumnDefault = &value
		}
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column rows: %w", err)
	}

	return columns, nil
}
