package generator

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/ridoystarlord/crudgen/schema"
	"github.com/ridoystarlord/crudgen/validator"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

// Kind identifies one of the artifacts rendered per module.
type Kind string

const (
	KindEntity              Kind = "entity"
	KindModel               Kind = "model"
	KindUseCase             Kind = "usecase"
	KindRepositoryInterface Kind = "repository-interface"
	KindRepository          Kind = "repository"
	KindController          Kind = "controller"
	KindServices            Kind = "services"
	KindRoutes              Kind = "routes"
	KindMigration           Kind = "migration"
)

// Artifact is one rendered file. Path is slash-separated and relative to the output root.
type Artifact struct {
	Kind    Kind
	Path    string
	Content []byte
}

type artifactSpec struct {
	kind     Kind
	template string
	dir      string
	suffix   string
}

// Order is the rendering order; it does not matter for emission.
var artifactSpecs = []artifactSpec{
	{KindEntity, "entity.go.tmpl", "domain", "entity"},
	{KindModel, "model.go.tmpl", "infrastructure/model", "model"},
	{KindUseCase, "usecase.go.tmpl", "application", "usecase"},
	{KindRepositoryInterface, "repository_interface.go.tmpl", "domain", "repository"},
	{KindRepository, "repository.go.tmpl", "infrastructure/repository", "repository"},
	{KindController, "controller.go.tmpl", "infrastructure/controller", "controller"},
	{KindServices, "services.go.tmpl", "infrastructure/services", "services"},
	{KindRoutes, "routes.go.tmpl", "infrastructure/routes", "routes"},
}

// ArtifactPath is where an artifact of the given layer lands for module.
func ArtifactPath(module, dir, suffix, ext string) string {
	return path.Join(module, dir, module+"_"+suffix+ext)
}

// Options configures import paths and naming shared by all artifacts.
type Options struct {
	// ImportPrefix is the Go import path of the output root; module packages live below it.
	ImportPrefix     string
	RuntimeImport    string
	SchemaNamespace  string
	SoftDeleteColumn string
}

// RenderError means a descriptor could not be turned into source. Under
// validated input it indicates a bug, not a user error.
type RenderError struct {
	Module string
	Kind   Kind
	Err    error
}

func (e *RenderError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("render module %s: %v", e.Module, e.Err)
	}
	return fmt.Sprintf("render %s artifact of module %s: %v", e.Kind, e.Module, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Engine renders the layered artifacts of a module from its descriptor.
// It holds no per-run state and may be reused.
type Engine struct {
	opts      Options
	templates *template.Template
}

func NewEngine(opts Options) (*Engine, error) {
	if strings.TrimSpace(opts.ImportPrefix) == "" {
		return nil, &validator.ConfigurationError{Field: "import prefix", Message: "is required"}
	}
	opts.ImportPrefix = strings.TrimSuffix(opts.ImportPrefix, "/")
	if opts.RuntimeImport == "" {
		opts.RuntimeImport = DefaultRuntimeImport
	}
	if opts.SoftDeleteColumn == "" {
		opts.SoftDeleteColumn = DefaultSoftDeleteColumn
	}

	tmpl, err := template.New("crudgen").Funcs(funcMap()).ParseFS(templateFS, "templates/*.go.tmpl")
	if err != nil {
		return nil, &RenderError{Err: fmt.Errorf("parse templates: %w", err)}
	}

	return &Engine{opts: opts, templates: tmpl}, nil
}

// Render produces the eight source artifacts of desc. Equal descriptors and
// options always yield byte-identical output.
func (e *Engine) Render(desc *schema.ModuleDescriptor) ([]Artifact, error) {
	data, err := e.newTemplateData(desc)
	if err != nil {
		return nil, err
	}

	artifacts := make([]Artifact, 0, len(artifactSpecs))
	for _, spec := range artifactSpecs {
		artifact, err := e.render(spec, data)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

func (e *Engine) render(spec artifactSpec, data *templateData) (Artifact, error) {
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, spec.template, data); err != nil {
		return Artifact{}, &RenderError{Module: data.Module, Kind: spec.kind, Err: err}
	}

	file := ArtifactPath(data.Module, spec.dir, spec.suffix, ".go")
	src, err := imports.Process(file, buf.Bytes(), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return Artifact{}, &RenderError{Module: data.Module, Kind: spec.kind, Err: fmt.Errorf("format: %w", err)}
	}

	return Artifact{Kind: spec.kind, Path: file, Content: src}, nil
}
