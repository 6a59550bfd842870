package introspect

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool and *pgx.Conn used for catalog reads.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresCatalog reads information_schema.columns through pgx.
type PostgresCatalog struct {
	db     Querier
	schema string
}

func NewPostgresCatalog(db Querier, schema string) *PostgresCatalog {
	return &PostgresCatalog{db: db, schema: schema}
}

func (c *PostgresCatalog) Columns(ctx context.Context, tableName string) ([]ExistingColumn, error) {
	columnsQuery := `
	SELECT
		c.column_name,
		c.data_type,
		c.is_nullable,
		c.column_default
	FROM information_schema.columns c
	WHERE ($1 = '' OR c.table_schema = $1) AND c.table_name = $2
	ORDER BY c.ordinal_position;
	`

	rows, err := c.db.Query(ctx, columnsQuery, c.schema, tableName)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	defer rows.Close()

	var columns []ExistingColumn
	for rows.Next() {
		var col ExistingColumn
		var nullable string
		if err := rows.Scan(
			&col.ColumnName,
			&col.DataType,
			&nullable,
			&col.ColumnDefault,
		); err != nil {
			return nil, fmt.Errorf("scanning column: %w", err)
		}
		col.IsNullable = nullableFlag(nullable)
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column rows: %w", err)
	}

	return columns, nil
}
