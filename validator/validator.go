package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ridoystarlord/crudgen/schema"
	"github.com/ridoystarlord/crudgen/typemap"
)

// ConfigurationError reports missing or malformed invocation inputs.
// It is always raised before any catalog access.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s %s", e.Field, e.Message)
}

var (
	moduleNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	tableNamePattern  = regexp.MustCompile(`^[A-Za-z_#@][A-Za-z0-9_#@$-]*$`)
)

const maxIdentifierLength = 128

// reservedFields are method names of generated models.
var reservedFields = map[string]bool{
	"TableName": true,
}

// ValidateInvocation checks the two positional inputs of a generation run.
func ValidateInvocation(moduleName, tableName string) error {
	if strings.TrimSpace(moduleName) == "" {
		return &ConfigurationError{Field: "module name", Message: "is required"}
	}
	if strings.TrimSpace(tableName) == "" {
		return &ConfigurationError{Field: "table name", Message: "is required"}
	}
	if err := ValidateModuleName(moduleName); err != nil {
		return err
	}
	return ValidateTableName(tableName)
}

// ValidateModuleName accepts names usable both as a directory and inside Go identifiers.
func ValidateModuleName(name string) error {
	if !moduleNamePattern.MatchString(name) || len(name) > maxIdentifierLength {
		return &ConfigurationError{
			Field:   "module name",
			Message: fmt.Sprintf("%q must start with a letter and contain only letters, digits and underscores", name),
		}
	}
	return nil
}

// ValidateTableName rejects anything that is not a plain identifier.
func ValidateTableName(name string) error {
	if !tableNamePattern.MatchString(name) || len(name) > maxIdentifierLength {
		return &ConfigurationError{
			Field:   "table name",
			Message: fmt.Sprintf("%q is not a valid table identifier", name),
		}
	}
	return nil
}

// ValidationError represents a validation finding with details
type ValidationError struct {
	Type     string `json:"type"`
	Table    string `json:"table,omitempty"`
	Column   string `json:"column,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // "error", "warning"
}

func (e ValidationError) String() string {
	if e.Column != "" {
		return fmt.Sprintf("%s.%s: %s", e.Table, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Table, e.Message)
}

// ValidationResult contains all validation results
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
}

// ValidateDescriptor checks the invariants rendering relies on: column names and the Go
// identifiers derived from them are unique. softDeleteColumn only produces a warning when absent.
func ValidateDescriptor(desc *schema.ModuleDescriptor, softDeleteColumn string) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	columns := desc.Columns()
	if len(columns) == 0 {
		result.Errors = append(result.Errors, ValidationError{
			Type:     "empty_table",
			Table:    desc.TableName(),
			Message:  "table has no columns",
			Severity: "error",
		})
	}

	seenNames := make(map[string]bool)
	seenFields := make(map[string]string)
	for _, col := range columns {
		if seenNames[col.Name] {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "duplicate_column",
				Table:    desc.TableName(),
				Column:   col.Name,
				Message:  "column appears more than once",
				Severity: "error",
			})
			continue
		}
		seenNames[col.Name] = true

		field := col.FieldName()
		if reservedFields[field] {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "reserved_field",
				Table:    desc.TableName(),
				Column:   col.Name,
				Message:  fmt.Sprintf("maps to Go field %s, which clashes with a generated method", field),
				Severity: "error",
			})
			continue
		}
		if other, ok := seenFields[field]; ok {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "field_collision",
				Table:    desc.TableName(),
				Column:   col.Name,
				Message:  fmt.Sprintf("maps to Go field %s, already used by column %q", field, other),
				Severity: "error",
			})
			continue
		}
		seenFields[field] = col.Name
	}

	if pk, ok := desc.PrimaryKey(); ok {
		if pk.IsNullable {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:     "nullable_primary_key",
				Table:    desc.TableName(),
				Column:   pk.Name,
				Message:  "first column is used as primary key but is nullable",
				Severity: "warning",
			})
		}
		if pk.DomainType != typemap.Number {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:     "non_numeric_primary_key",
				Table:    desc.TableName(),
				Column:   pk.Name,
				Message:  fmt.Sprintf("generated handlers parse ids as integers but the column type is %q", pk.RawType),
				Severity: "warning",
			})
		}
	}

	if softDeleteColumn != "" && len(columns) > 0 && !desc.HasColumn(softDeleteColumn) {
		result.Warnings = append(result.Warnings, ValidationError{
			Type:     "missing_soft_delete_column",
			Table:    desc.TableName(),
			Column:   softDeleteColumn,
			Message:  "generated delete marks this column but the table does not have it",
			Severity: "warning",
		})
	}

	result.Valid = len(result.Errors) == 0
	return result
}
