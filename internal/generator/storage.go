package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type writeCategory string

const (
	categoryPage  writeCategory = "page"
	categoryAsset writeCategory = "asset"
)

// writeFileRequest describes a file write routed through the artifact writer.
type writeFileRequest struct {
	// Path is slash separated and relative to the output directory.
	Path     string
	Content  io.Reader
	Category writeCategory
}

// artifactWriter abstracts where generator outputs end up.
type artifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, req writeFileRequest) error
}

func newArtifactWriter(root string, dryRun bool) artifactWriter {
	if dryRun {
		return noopWriter{}
	}
	return &fsWriter{root: root}
}

type fsWriter struct {
	root string
}

func (w *fsWriter) EnsureDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Join(w.root, filepath.FromSlash(path))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("generator: ensure dir %s: %w", dir, err)
	}
	return nil
}

func (w *fsWriter) WriteFile(ctx context.Context, req writeFileRequest) error {
	if req.Content == nil {
		return errors.New("generator: write requires content reader")
	}
	if strings.TrimSpace(req.Path) == "" {
		return errors.New("generator: write requires path")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	target := filepath.Join(w.root, filepath.FromSlash(req.Path))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("generator: write %s %s: %w", req.Category, req.Path, err)
	}

	file, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("generator: write %s %s: %w", req.Category, req.Path, err)
	}
	if _, err := io.Copy(file, req.Content); err != nil {
		_ = file.Close()
		return fmt.Errorf("generator: write %s %s: %w", req.Category, req.Path, err)
	}
	return file.Close()
}

type noopWriter struct{}

func (noopWriter) EnsureDir(context.Context, string) error { return nil }

func (noopWriter) WriteFile(context.Context, writeFileRequest) error { return nil }

func safeToRemove(dir string) bool {
	if dir == "" {
		return false
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	if abs == filepath.Dir(abs) {
		return false
	}
	cwd, err := os.Getwd()
	if err == nil && abs == cwd {
		return false
	}
	return true
}

// within reports whether child is parent or lies below it.
func within(parent, child string) bool {
	p, err := filepath.Abs(parent)
	if err != nil {
		return false
	}
	c, err := filepath.Abs(child)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(p, c)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func removeAll(dir string) error {
	return os.RemoveAll(dir)
}
