package markdown

import (
	"bytes"
	"fmt"
	"maps"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// ParseFrontMatter splits an optional YAML header from the Markdown body.
// Sources without a header return a zero FrontMatter and the unchanged body.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return meta.toFrontMatter(), body, nil
}

// BuildDocument assembles a Document from a content file. BodyHTML is left
// empty so callers can render lazily.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		FilePath:     path,
		FrontMatter:  meta,
		Body:         body,
		LastModified: modified,
	}, nil
}

type frontMatterEnvelope struct {
	Title    string         `yaml:"title"`
	Summary  string         `yaml:"summary"`
	Template string         `yaml:"template"`
	Tags     []string       `yaml:"tags"`
	Date     time.Time      `yaml:"date"`
	Draft    bool           `yaml:"draft"`
	Custom   map[string]any `yaml:",inline"`
}

func (env frontMatterEnvelope) toFrontMatter() interfaces.FrontMatter {
	raw := make(map[string]any, len(env.Custom)+6)
	maps.Copy(raw, env.Custom)

	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Summary != "" {
		raw["summary"] = env.Summary
	}
	if env.Template != "" {
		raw["template"] = env.Template
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if !env.Date.IsZero() {
		raw["date"] = env.Date
	}
	if env.Draft {
		raw["draft"] = true
	}

	custom := make(map[string]any, len(env.Custom))
	maps.Copy(custom, env.Custom)

	return interfaces.FrontMatter{
		Title:    env.Title,
		Summary:  env.Summary,
		Template: env.Template,
		Tags:     append([]string(nil), env.Tags...),
		Date:     env.Date,
		Draft:    env.Draft,
		Custom:   custom,
		Raw:      raw,
	}
}
