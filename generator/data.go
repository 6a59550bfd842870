package generator

import (
	"errors"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/ridoystarlord/crudgen/schema"
)

const (
	DefaultRuntimeImport    = "github.com/ridoystarlord/crudgen/scaffold"
	DefaultSoftDeleteColumn = "is_deleted"
)

type templateData struct {
	Module           string
	Type             string
	Table            string
	Schema           string
	Base             string
	Runtime          string
	SoftDeleteColumn string
	Columns          []columnData
}

type columnData struct {
	Name        string
	Field       string
	GoType      string
	Persistence string
	Nullable    bool
	PrimaryKey  bool
	HasDefault  bool
	Default     string
	GormTag     string
	JSONTag     string
}

func (e *Engine) newTemplateData(desc *schema.ModuleDescriptor) (*templateData, error) {
	if desc == nil {
		return nil, &RenderError{Err: errors.New("nil module descriptor")}
	}
	if desc.ModuleName() == "" || desc.TableName() == "" {
		return nil, &RenderError{Module: desc.ModuleName(), Err: errors.New("descriptor is missing module or table name")}
	}

	cols := desc.Columns()
	if len(cols) == 0 {
		return nil, &RenderError{Module: desc.ModuleName(), Err: errors.New("descriptor has no columns")}
	}

	data := &templateData{
		Module:           desc.ModuleName(),
		Type:             desc.TypeName(),
		Table:            desc.TableName(),
		Schema:           e.opts.SchemaNamespace,
		Base:             e.opts.ImportPrefix + "/" + desc.ModuleName(),
		Runtime:          e.opts.RuntimeImport,
		SoftDeleteColumn: e.opts.SoftDeleteColumn,
		Columns:          make([]columnData, 0, len(cols)),
	}
	for i, col := range cols {
		data.Columns = append(data.Columns, newColumnData(col, i == 0))
	}

	return data, nil
}

func newColumnData(col schema.Column, primaryKey bool) columnData {
	return columnData{
		Name:        col.Name,
		Field:       col.FieldName(),
		GoType:      col.DomainType.GoType(),
		Persistence: col.PersistenceType.Ident(),
		Nullable:    col.IsNullable,
		PrimaryKey:  primaryKey,
		HasDefault:  col.HasDefault(),
		Default:     col.Default(),
		GormTag:     gormTag(col, primaryKey),
		JSONTag:     structTag("json", col.Name),
	}
}

// funcMap is sprig's text functions; templates rely on quote for Go string literals.
func funcMap() template.FuncMap {
	return sprig.TxtFuncMap()
}

// gormTag renders the gorm struct tag of a model field. Default values are
// copied verbatim from the catalog with ';' escaped.
func gormTag(col schema.Column, primaryKey bool) string {
	settings := []string{"column:" + escapeTagValue(col.Name)}
	if primaryKey {
		settings = append(settings, "primaryKey")
	}
	if !col.IsNullable {
		settings = append(settings, "not null")
	}
	if col.HasDefault() {
		settings = append(settings, "default:"+escapeTagValue(col.Default()))
	}
	switch col.FieldName() {
	case "CreatedAt", "UpdatedAt":
		settings = append(settings, "autoCreateTime:false", "autoUpdateTime:false")
	}
	return structTag("gorm", strings.Join(settings, ";"))
}

func escapeTagValue(s string) string {
	return strings.ReplaceAll(s, ";", `\;`)
}

// structTag returns a Go literal for a single key:"value" struct tag.
func structTag(key, value string) string {
	tag := key + ":" + strconv.Quote(value)
	if strings.Contains(tag, "`") {
		return strconv.Quote(tag)
	}
	return "`" + tag + "`"
}
