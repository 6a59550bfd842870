package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"

	"github.com/ridoystarlord/crudgen/utils"
	"github.com/ridoystarlord/crudgen/validator"
)

const (
	DefaultFile          = "crudgen.yaml"
	DefaultOutput        = "src/api/v1"
	DefaultRuntimeImport = "github.com/ridoystarlord/crudgen/scaffold"
	DefaultSoftDelete    = "is_deleted"
)

// Database holds the catalog connection settings read from the environment.
type Database struct {
	Dialect  Dialect
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	Storage  string
	Schema   string
}

// Project holds the generation settings of crudgen.yaml.
type Project struct {
	Output           string `yaml:"output"`
	ImportPrefix     string `yaml:"import_prefix"`
	RuntimeImport    string `yaml:"runtime_import"`
	Schema           string `yaml:"schema"`
	SoftDeleteColumn string `yaml:"soft_delete_column"`
}

type Config struct {
	Database Database
	Project  Project
}

// Load reads the environment (after .env) and the optional project file at file.
// A missing file is only an error when it was asked for explicitly.
func Load(file string, explicit bool) (*Config, error) {
	utils.LoadEnv()

	db, err := DatabaseFromEnv()
	if err != nil {
		return nil, err
	}

	project, err := LoadProject(file)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			project = &Project{}
		} else {
			return nil, err
		}
	}

	cfg := &Config{Database: db, Project: *project}
	if cfg.Project.Schema != "" {
		cfg.Database.Schema = cfg.Project.Schema
	}
	cfg.applyDefaults()

	return cfg, nil
}

// DatabaseFromEnv reads the DB_* variables, filling per-dialect defaults.
func DatabaseFromEnv() (Database, error) {
	dialect, err := ParseDialect(os.Getenv("DB_DIALECT"))
	if err != nil {
		return Database{}, err
	}

	db := Database{
		Dialect:  dialect,
		URL:      os.Getenv("DATABASE_URL"),
		Host:     utils.GetEnv("DB_HOST", "localhost"),
		Port:     utils.GetEnv("DB_PORT", dialect.DefaultPort()),
		Name:     os.Getenv("DB_NAME"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Storage:  os.Getenv("DB_STORAGE"),
	}
	db.Schema = utils.GetEnv("DB_SCHEMA", dialect.DefaultSchema())

	return db, nil
}

// LoadProject parses a crudgen.yaml file.
func LoadProject(file string) (*Project, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var project Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", file, err)
	}
	return &project, nil
}

func (c *Config) applyDefaults() {
	if c.Project.Output == "" {
		c.Project.Output = DefaultOutput
	}
	if c.Project.RuntimeImport == "" {
		c.Project.RuntimeImport = DefaultRuntimeImport
	}
	if c.Project.SoftDeleteColumn == "" {
		c.Project.SoftDeleteColumn = DefaultSoftDelete
	}
}

// WithDialect switches dialect, moving the schema to the new dialect's default unless it was set explicitly.
func (c *Config) WithDialect(d Dialect) {
	if c.Database.Dialect == d {
		return
	}
	if c.Project.Schema == "" && os.Getenv("DB_SCHEMA") == "" {
		c.Database.Schema = d.DefaultSchema()
	}
	if os.Getenv("DB_PORT") == "" {
		c.Database.Port = d.DefaultPort()
	}
	c.Database.Dialect = d
}

// ResolveImportPrefix returns the Go import path of the output directory. Without an explicit
// prefix it is derived from the module path of the go.mod found in dir or its parents.
func (c *Config) ResolveImportPrefix(dir string) (string, error) {
	if c.Project.ImportPrefix != "" {
		return strings.TrimSuffix(c.Project.ImportPrefix, "/"), nil
	}

	modPath, modDir, err := FindModule(dir)
	if err != nil {
		return "", err
	}

	out := c.Project.Output
	if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}
	rel, err := filepath.Rel(modDir, out)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &validator.ConfigurationError{
			Field:   "output",
			Message: fmt.Sprintf("%s is outside module %s; set import_prefix", c.Project.Output, modPath),
		}
	}

	return path.Join(modPath, filepath.ToSlash(rel)), nil
}

// FindModule walks up from dir to the nearest go.mod and returns its module path and directory.
func FindModule(dir string) (string, string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", "", err
	}

	for {
		file := filepath.Join(abs, "go.mod")
		data, err := os.ReadFile(file)
		if err == nil {
			modPath := modfile.ModulePath(data)
			if modPath == "" {
				return "", "", fmt.Errorf("%s has no module directive", file)
			}
			return modPath, abs, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", "", fmt.Errorf("reading %s: %w", file, err)
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", "", &validator.ConfigurationError{
				Field:   "import prefix",
				Message: "cannot be derived: no go.mod found; set import_prefix or --import-prefix",
			}
		}
		abs = parent
	}
}

// DSN builds the driver connection string. DATABASE_URL always wins.
func (d Database) DSN() (string, error) {
	if d.URL != "" {
		return d.URL, nil
	}

	switch d.Dialect {
	case SQLite:
		if d.Storage == "" {
			return "", &validator.ConfigurationError{Field: "DB_STORAGE", Message: "is required for sqlite"}
		}
		return d.Storage, nil
	case Postgres:
		if d.Name == "" {
			return "", &validator.ConfigurationError{Field: "DB_NAME", Message: "is required (or set DATABASE_URL)"}
		}
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(d.User, d.Password),
			Host:   d.Host + ":" + d.Port,
			Path:   d.Name,
		}
		return u.String(), nil
	default:
		if d.Name == "" {
			return "", &validator.ConfigurationError{Field: "DB_NAME", Message: "is required (or set DATABASE_URL)"}
		}
		query := url.Values{}
		query.Set("database", d.Name)
		u := url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(d.User, d.Password),
			Host:     d.Host + ":" + d.Port,
			RawQuery: query.Encode(),
		}
		return u.String(), nil
	}
}
