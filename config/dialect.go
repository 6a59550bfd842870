package config

import (
	"fmt"
	"strings"

	"github.com/ridoystarlord/crudgen/validator"
)

// Dialect selects the catalog driver and the SQL flavour of emitted migrations.
type Dialect string

const (
	SQLServer Dialect = "mssql"
	Postgres  Dialect = "postgres"
	SQLite    Dialect = "sqlite"
)

// ParseDialect accepts the canonical names plus the usual driver aliases.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mssql", "sqlserver":
		return SQLServer, nil
	case "postgres", "postgresql", "pg", "pgx":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", &validator.ConfigurationError{
			Field:   "dialect",
			Message: fmt.Sprintf("%q is not supported (use mssql, postgres or sqlite)", name),
		}
	}
}

// DefaultSchema is the namespace catalog lookups and generated models use when DB_SCHEMA is unset.
func (d Dialect) DefaultSchema() string {
	switch d {
	case Postgres:
		return "public"
	case SQLite:
		return ""
	default:
		return "dbo"
	}
}

func (d Dialect) DefaultPort() string {
	switch d {
	case Postgres:
		return "5432"
	case SQLite:
		return ""
	default:
		return "1433"
	}
}
