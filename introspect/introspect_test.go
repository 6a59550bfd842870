package introspect

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	columns []ExistingColumn
	err     error
	calls   []string
}

func (s *stubCatalog) Columns(_ context.Context, tableName string) ([]ExistingColumn, error) {
	s.calls = append(s.calls, tableName)
	return s.columns, s.err
}

func TestFetchColumnsPreservesOrderAndLowercasesTypes(t *testing.T) {
	catalog := &stubCatalog{columns: []ExistingColumn{
		{ColumnName: "id", DataType: "INT", IsNullable: false},
		{ColumnName: "name", DataType: " VarChar ", IsNullable: true},
		{ColumnName: "created", DataType: "datetime", IsNullable: true},
	}}

	columns, err := NewIntrospector(catalog).FetchColumns(context.Background(), "users")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	assert.Equal(t, []string{"users"}, catalog.calls)
	assert.Equal(t, "id", columns[0].ColumnName)
	assert.Equal(t, "int", columns[0].DataType)
	assert.Equal(t, "varchar", columns[1].DataType)
	assert.Equal(t, "created", columns[2].ColumnName)
}

func TestFetchColumnsWrapsCatalogFailures(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := NewIntrospector(&stubCatalog{err: boom}).FetchColumns(context.Background(), "users")

	var catalogErr *CatalogError
	require.ErrorAs(t, err, &catalogErr)
	assert.Equal(t, "users", catalogErr.Table)
	assert.ErrorIs(t, err, boom)
}

func TestFetchColumnsRejectsEmptyTables(t *testing.T) {
	_, err := NewIntrospector(&stubCatalog{}).FetchColumns(context.Background(), "ghost")

	var catalogErr *CatalogError
	require.ErrorAs(t, err, &catalogErr)
	assert.ErrorIs(t, err, ErrNoColumns)
	assert.Contains(t, err.Error(), `"ghost"`)
}

func TestNullableFlag(t *testing.T) {
	assert.True(t, nullableFlag("YES"))
	assert.True(t, nullableFlag("yes "))
	assert.False(t, nullableFlag("NO"))
	assert.False(t, nullableFlag(""))
}
