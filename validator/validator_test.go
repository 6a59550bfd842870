package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/crudgen/introspect"
	"github.com/ridoystarlord/crudgen/schema"
)

func TestValidateInvocation(t *testing.T) {
	tests := []struct {
		name      string
		module    string
		table     string
		wantField string
	}{
		{"valid", "user", "users", ""},
		{"valid with underscores", "order_line", "order_lines", ""},
		{"missing module", "", "users", "module name"},
		{"blank module", "  ", "users", "module name"},
		{"missing table", "user", "", "table name"},
		{"missing both", "", "", "module name"},
		{"module with dash", "user-role", "users", "module name"},
		{"module starting with digit", "1user", "users", "module name"},
		{"table with quote", "user", "users'; DROP TABLE users; --", "table name"},
		{"table with space", "user", "my users", "table name"},
		{"table with dot", "user", "dbo.users", "table name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInvocation(tt.module, tt.table)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func strPtr(s string) *string { return &s }

func TestValidateDescriptorClean(t *testing.T) {
	desc := schema.NewModuleDescriptor("user", "users", []introspect.ExistingColumn{
		{ColumnName: "id", DataType: "int"},
		{ColumnName: "name", DataType: "varchar", IsNullable: true},
		{ColumnName: "is_deleted", DataType: "bit", IsNullable: true, ColumnDefault: strPtr("((0))")},
	})

	result := ValidateDescriptor(desc, "is_deleted")
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateDescriptorFindsCollisions(t *testing.T) {
	desc := schema.NewModuleDescriptor("user", "users", []introspect.ExistingColumn{
		{ColumnName: "id", DataType: "int"},
		{ColumnName: "user_name", DataType: "varchar"},
		{ColumnName: "userName", DataType: "varchar"},
		{ColumnName: "id", DataType: "int"},
	})

	result := ValidateDescriptor(desc, "")
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 2)

	types := []string{result.Errors[0].Type, result.Errors[1].Type}
	assert.ElementsMatch(t, []string{"field_collision", "duplicate_column"}, types)
}

func TestValidateDescriptorWarnings(t *testing.T) {
	desc := schema.NewModuleDescriptor("token", "tokens", []introspect.ExistingColumn{
		{ColumnName: "code", DataType: "uniqueidentifier", IsNullable: true},
	})

	result := ValidateDescriptor(desc, "is_deleted")
	assert.True(t, result.Valid)

	var kinds []string
	for _, w := range result.Warnings {
		kinds = append(kinds, w.Type)
	}
	assert.Equal(t, []string{"nullable_primary_key", "non_numeric_primary_key", "missing_soft_delete_column"}, kinds)
	assert.Equal(t, "tokens.code: first column is used as primary key but is nullable", result.Warnings[0].String())
}

func TestValidateDescriptorEmptyTable(t *testing.T) {
	result := ValidateDescriptor(schema.NewModuleDescriptor("user", "users", nil), "is_deleted")
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "empty_table", result.Errors[0].Type)
	assert.Empty(t, result.Warnings)
}

func TestValidateDescriptorReservedField(t *testing.T) {
	desc := schema.NewModuleDescriptor("report", "reports", []introspect.ExistingColumn{
		{ColumnName: "id", DataType: "int"},
		{ColumnName: "table_name", DataType: "varchar"},
	})

	result := ValidateDescriptor(desc, "")
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "reserved_field", result.Errors[0].Type)
	assert.Equal(t, "table_name", result.Errors[0].Column)
}
