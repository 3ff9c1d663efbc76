package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goliatone/go-sitegen/internal/markdown"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// FileTemplate is a page template with {{ Title }} and {{ Content }}
// placeholders.
type FileTemplate struct {
	name string
	body string
}

var _ interfaces.PageTemplate = (*FileTemplate)(nil)

// LoadTemplate reads a template from disk.
func LoadTemplate(path string) (*FileTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("generator: load template: %w", err)
	}
	return &FileTemplate{name: filepath.Base(path), body: string(data)}, nil
}

// NewTemplate wraps an in-memory template body.
func NewTemplate(name, body string) *FileTemplate {
	return &FileTemplate{name: name, body: body}
}

// Name returns the file name the template was loaded from.
func (t *FileTemplate) Name() string {
	return t.name
}

// Execute substitutes the page title and content.
func (t *FileTemplate) Execute(page interfaces.PageData) (string, error) {
	return markdown.ApplyTemplate(t.body, page.Title, page.Content), nil
}

// templateSet resolves per-page template overrides next to the default
// template, loading each file at most once.
type templateSet struct {
	dir      string
	fallback interfaces.PageTemplate
	name     string

	mu     sync.Mutex
	loaded map[string]interfaces.PageTemplate
}

func newTemplateSet(defaultPath string, fallback interfaces.PageTemplate) *templateSet {
	name := filepath.Base(defaultPath)
	if named, ok := fallback.(interface{ Name() string }); ok && named.Name() != "" {
		name = named.Name()
	}
	return &templateSet{
		dir:      filepath.Dir(defaultPath),
		fallback: fallback,
		name:     name,
		loaded:   map[string]interfaces.PageTemplate{},
	}
}

func (s *templateSet) lookup(name string) (interfaces.PageTemplate, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.fallback, s.name, nil
	}
	if filepath.Ext(name) == "" {
		name += ".html"
	}
	if filepath.IsAbs(name) || strings.HasPrefix(filepath.Clean(name), "..") {
		return nil, name, fmt.Errorf("generator: template %q must stay inside %s", name, s.dir)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tpl, ok := s.loaded[name]; ok {
		return tpl, name, nil
	}
	tpl, err := LoadTemplate(filepath.Join(s.dir, name))
	if err != nil {
		return nil, name, err
	}
	s.loaded[name] = tpl
	return tpl, name, nil
}
