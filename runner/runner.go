package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ridoystarlord/crudgen/config"
	"github.com/ridoystarlord/crudgen/emitter"
	"github.com/ridoystarlord/crudgen/generator"
	"github.com/ridoystarlord/crudgen/introspect"
	"github.com/ridoystarlord/crudgen/schema"
	"github.com/ridoystarlord/crudgen/validator"
)

// Request is one generation run.
type Request struct {
	ModuleName          string
	TableName           string
	Dialect             config.Dialect
	SoftDeleteMigration bool
}

// Result is what a run produced. Artifacts holds everything that was emitted.
type Result struct {
	Descriptor *schema.ModuleDescriptor
	Validation *validator.ValidationResult
	Artifacts  []generator.Artifact
}

// DescriptorError reports a table whose columns cannot be turned into consistent artifacts.
type DescriptorError struct {
	Table  string
	Errors []validator.ValidationError
}

func (e *DescriptorError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ve := range e.Errors {
		msgs = append(msgs, ve.String())
	}
	return fmt.Sprintf("table %s cannot be generated: %s", e.Table, strings.Join(msgs, "; "))
}

// CatalogOpener acquires a catalog for the duration of a run. release is called
// once the run no longer needs it.
type CatalogOpener func(ctx context.Context) (catalog introspect.Catalog, release func(), err error)

// Runner drives validate, introspect, describe, render and emit.
type Runner struct {
	open             CatalogOpener
	engine           *generator.Engine
	emitter          emitter.Emitter
	softDeleteColumn string
}

func New(open CatalogOpener, engine *generator.Engine, out emitter.Emitter, softDeleteColumn string) *Runner {
	return &Runner{
		open:             open,
		engine:           engine,
		emitter:          out,
		softDeleteColumn: softDeleteColumn,
	}
}

// Run generates one module. Invocation inputs are checked before the catalog is opened.
// Emission is not transactional: on a write failure earlier artifacts stay on disk.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	if err := validator.ValidateInvocation(req.ModuleName, req.TableName); err != nil {
		return nil, err
	}

	log := logrus.WithFields(logrus.Fields{"module": req.ModuleName, "table": req.TableName})

	catalog, release, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	desc, err := Describe(ctx, catalog, req.ModuleName, req.TableName)
	if err != nil {
		return nil, err
	}
	log.WithField("columns", len(desc.Columns())).Debug("table introspected")

	validation := validator.ValidateDescriptor(desc, r.softDeleteColumn)
	for _, w := range validation.Warnings {
		log.WithField("check", w.Type).Warn(w.String())
	}
	if !validation.Valid {
		return nil, &DescriptorError{Table: req.TableName, Errors: validation.Errors}
	}

	artifacts, err := r.engine.Render(desc)
	if err != nil {
		return nil, err
	}

	if req.SoftDeleteMigration {
		migration, ok, err := r.engine.RenderSoftDeleteMigration(desc, req.Dialect)
		if err != nil {
			return nil, err
		}
		if ok {
			artifacts = append(artifacts, migration)
		}
	}

	result := &Result{Descriptor: desc, Validation: validation}
	for _, a := range artifacts {
		if err := r.emitter.Emit(a.Path, a.Content); err != nil {
			return result, fmt.Errorf("emitting %s: %w", a.Path, err)
		}
		result.Artifacts = append(result.Artifacts, a)
		log.WithFields(logrus.Fields{"kind": a.Kind, "path": a.Path}).Debug("artifact emitted")
	}

	log.WithField("artifacts", len(result.Artifacts)).Info("module generated")
	return result, nil
}

// Describe introspects tableName and builds the descriptor every artifact is rendered from.
func Describe(ctx context.Context, catalog introspect.Catalog, moduleName, tableName string) (*schema.ModuleDescriptor, error) {
	columns, err := introspect.NewIntrospector(catalog).FetchColumns(ctx, tableName)
	if err != nil {
		return nil, err
	}
	return schema.NewModuleDescriptor(moduleName, tableName, columns), nil
}
