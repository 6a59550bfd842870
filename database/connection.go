package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/microsoft/go-mssqldb"
	"github.com/sirupsen/logrus"

	"github.com/ridoystarlord/crudgen/config"
	"github.com/ridoystarlord/crudgen/introspect"
	"github.com/ridoystarlord/crudgen/validator"
)

// Connection is a catalog connection owned by one run. Close it when the run ends.
type Connection struct {
	introspect.Catalog

	dialect config.Dialect
	ping    func(ctx context.Context) error
	close   func()
}

// Open connects to the database described by db and verifies it answers.
func Open(ctx context.Context, db config.Database) (*Connection, error) {
	dsn, err := db.DSN()
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"dialect": db.Dialect, "schema": db.Schema}).Debug("opening catalog connection")

	switch db.Dialect {
	case config.Postgres:
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("unable to create connection pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("unable to ping database: %w", err)
		}
		return &Connection{
			Catalog: introspect.NewPostgresCatalog(pool, db.Schema),
			dialect: db.Dialect,
			ping:    pool.Ping,
			close:   pool.Close,
		}, nil

	case config.SQLite:
		// sqlite3 would silently create a missing file.
		if !strings.HasPrefix(dsn, "file:") {
			if _, err := os.Stat(dsn); err != nil {
				return nil, &validator.ConfigurationError{Field: "DB_STORAGE", Message: fmt.Sprintf("cannot open %s: %v", dsn, err)}
			}
		}
		sqlDB, err := openSQL(ctx, "sqlite3", dsn)
		if err != nil {
			return nil, err
		}
		return newSQLConnection(introspect.NewSQLiteCatalog(sqlDB), db.Dialect, sqlDB), nil

	default:
		sqlDB, err := openSQL(ctx, "sqlserver", dsn)
		if err != nil {
			return nil, err
		}
		return newSQLConnection(introspect.NewSQLServerCatalog(sqlDB, db.Schema), db.Dialect, sqlDB), nil
	}
}

func openSQL(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s connection: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	return db, nil
}

func newSQLConnection(catalog introspect.Catalog, dialect config.Dialect, db *sql.DB) *Connection {
	return &Connection{
		Catalog: catalog,
		dialect: dialect,
		ping:    db.PingContext,
		close: func() {
			if err := db.Close(); err != nil {
				logrus.WithError(err).Warn("closing catalog connection")
			}
		},
	}
}

func (c *Connection) Dialect() config.Dialect {
	return c.dialect
}

// Ping checks the connection is still usable.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

func (c *Connection) Close() {
	if c.close != nil {
		c.close()
		c.close = nil
	}
}
