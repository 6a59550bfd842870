package introspect

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPostgresCatalogColumns(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("catalog"),
		postgres.WithUsername("crudgen"),
		postgres.WithPassword("crudgen"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `CREATE TABLE users (
		id integer NOT NULL PRIMARY KEY,
		name varchar(50),
		active boolean DEFAULT true,
		created timestamp
	)`)
	require.NoError(t, err)

	columns, err := NewPostgresCatalog(pool, "public").Columns(ctx, "users")
	require.NoError(t, err)
	require.Len(t, columns, 4)

	assert.Equal(t, "id", columns[0].ColumnName)
	assert.Equal(t, "integer", columns[0].DataType)
	assert.False(t, columns[0].IsNullable)
	assert.Nil(t, columns[0].ColumnDefault)

	assert.Equal(t, "character varying", columns[1].DataType)
	assert.True(t, columns[1].IsNullable)

	require.NotNil(t, columns[2].ColumnDefault)
	assert.Equal(t, "true", *columns[2].ColumnDefault)

	assert.Equal(t, "timestamp without time zone", columns[3].DataType)

	others, err := NewPostgresCatalog(pool, "elsewhere").Columns(ctx, "users")
	require.NoError(t, err)
	assert.Empty(t, others)

	unscoped, err := NewPostgresCatalog(pool, "").Columns(ctx, "users")
	require.NoError(t, err)
	assert.Len(t, unscoped, 4)
}
