package emitter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Emitter persists one rendered artifact. path is slash-separated and relative to the emitter's root.
type Emitter interface {
	Emit(path string, content []byte) error
}

// FileEmitter writes under Root, creating missing directories and overwriting existing files.
type FileEmitter struct {
	Root string
}

func NewFileEmitter(root string) *FileEmitter {
	return &FileEmitter{Root: root}
}

func (e *FileEmitter) Emit(path string, content []byte) error {
	target, err := e.resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{"path": target, "bytes": len(content)}).Debug("artifact written")
	return nil
}

// resolve keeps every write inside Root.
func (e *FileEmitter) resolve(path string) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("artifact path %q escapes output root", path)
	}
	return filepath.Join(e.Root, rel), nil
}

// DryRun prints artifacts to W instead of writing them.
type DryRun struct {
	W io.Writer
}

func NewDryRun(w io.Writer) *DryRun {
	return &DryRun{W: w}
}

func (d *DryRun) Emit(path string, content []byte) error {
	header := color.New(color.FgCyan, color.Bold).Sprintf("==> %s", path)
	if _, err := fmt.Fprintln(d.W, header); err != nil {
		return err
	}
	if _, err := d.W.Write(content); err != nil {
		return err
	}
	if len(content) > 0 && content[len(content)-1] != '\n' {
		_, err := fmt.Fprintln(d.W)
		return err
	}
	return nil
}
