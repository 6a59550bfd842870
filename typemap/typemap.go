package typemap

import "strings"

// PersistenceType is the storage-binding tag of a column.
type PersistenceType string

const (
	Integer PersistenceType = "INTEGER"
	String  PersistenceType = "STRING"
	Date    PersistenceType = "DATE"
	Boolean PersistenceType = "BOOLEAN"
	Float   PersistenceType = "FLOAT"
	Decimal PersistenceType = "DECIMAL"
)

// DomainType is the business-facing tag of a column.
type DomainType string

const (
	Number          DomainType = "Number"
	NullableString  DomainType = "NullableString"
	NullableBoolean DomainType = "NullableBoolean"
)

type persistenceRule struct {
	needles []string
	tag     PersistenceType
}

type domainRule struct {
	needles []string
	tag     DomainType
}

// Order matters: "datetime" contains both "date" and "time", "bigint" contains "int".
var persistenceRules = []persistenceRule{
	{[]string{"int"}, Integer},
	{[]string{"varchar", "text"}, String},
	{[]string{"datetime", "date", "time"}, Date},
	{[]string{"bit"}, Boolean},
	{[]string{"float", "double", "real"}, Float},
	{[]string{"decimal", "numeric"}, Decimal},
}

var domainRules = []domainRule{
	{[]string{"int"}, Number},
	{[]string{"varchar", "text", "datetime", "date", "time"}, NullableString},
	{[]string{"bit"}, NullableBoolean},
}

// MapPersistenceType returns the first persistence tag whose rule matches rawType,
// or String when none does.
func MapPersistenceType(rawType string) PersistenceType {
	for _, rule := range persistenceRules {
		if containsAny(rawType, rule.needles) {
			return rule.tag
		}
	}
	return String
}

// MapDomainType returns the first domain tag whose rule matches rawType,
// or NullableString when none does.
func MapDomainType(rawType string) DomainType {
	for _, rule := range domainRules {
		if containsAny(rawType, rule.needles) {
			return rule.tag
		}
	}
	return NullableString
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// Ident is the name of the matching constant in the scaffold runtime package.
func (p PersistenceType) Ident() string {
	switch p {
	case Integer:
		return "Integer"
	case Date:
		return "Date"
	case Boolean:
		return "Boolean"
	case Float:
		return "Float"
	case Decimal:
		return "Decimal"
	default:
		return "String"
	}
}

// GoType is the Go type used for fields carrying this domain tag.
func (d DomainType) GoType() string {
	switch d {
	case Number:
		return "int64"
	case NullableBoolean:
		return "*bool"
	default:
		return "*string"
	}
}
