package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-sitegen/internal/markdown"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// RenderedPage describes one page produced by a build.
type RenderedPage struct {
	// Source is the document path relative to the content root.
	Source string
	// Output is the page path relative to the output directory.
	Output   string
	Title    string
	Template string
	Bytes    int64
	Checksum string
	Duration time.Duration
	// HTML holds the final page so links can be checked without re-reading it.
	HTML string
}

type renderOutcome struct {
	page    RenderedPage
	skipped bool
	err     error
}

func (s *service) renderPage(
	ctx context.Context,
	doc *interfaces.Document,
	templates *templateSet,
	writer artifactWriter,
) renderOutcome {
	outcome := renderOutcome{
		page: RenderedPage{
			Source: doc.FilePath,
			Output: outputPath(doc.FilePath),
		},
	}

	if err := ctx.Err(); err != nil {
		outcome.err = err
		return outcome
	}

	meta := interfaces.FrontMatter{}
	if s.cfg.UseFrontMatter {
		meta = doc.FrontMatter
	}
	if meta.Draft {
		outcome.skipped = true
		return outcome
	}

	start := time.Now()
	body, err := s.deps.Documents.RenderDocument(ctx, doc, interfaces.ParseOptions{})
	if err != nil {
		outcome.err = fmt.Errorf("generator: render %s: %w", doc.FilePath, err)
		return outcome
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title, err = markdown.ExtractTitle(string(doc.Body))
		if err != nil {
			outcome.err = fmt.Errorf("generator: page %s: %w", doc.FilePath, err)
			return outcome
		}
	}

	tpl, name, err := templates.lookup(meta.Template)
	if err != nil {
		outcome.err = fmt.Errorf("generator: page %s: %w", doc.FilePath, err)
		return outcome
	}

	html, err := tpl.Execute(interfaces.PageData{
		Title:   title,
		Content: string(body),
		Path:    outcome.page.Output,
		Meta:    meta.Raw,
	})
	if err != nil {
		outcome.err = fmt.Errorf("generator: apply template %q to %s: %w", name, doc.FilePath, err)
		return outcome
	}

	sum := sha256.Sum256([]byte(html))
	outcome.page.Title = title
	outcome.page.Template = name
	outcome.page.HTML = html
	outcome.page.Bytes = int64(len(html))
	outcome.page.Checksum = hex.EncodeToString(sum[:])

	if err := writer.WriteFile(ctx, writeFileRequest{
		Path:     outcome.page.Output,
		Content:  strings.NewReader(html),
		Category: categoryPage,
	}); err != nil {
		outcome.err = err
		return outcome
	}

	outcome.page.Duration = time.Since(start)
	return outcome
}
