package generator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

var (
	// ErrDocumentsRequired indicates the generator was wired without a document source.
	ErrDocumentsRequired = errors.New("generator: document source is required")
	// ErrUnsafeOutputDir guards Clean against removing the working directory or root.
	ErrUnsafeOutputDir = errors.New("generator: refusing to remove output directory")
)

// Service describes the static site generator contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
	Clean(ctx context.Context) error
}

// DocumentSource discovers content documents and renders their bodies.
// *markdown.Service satisfies it.
type DocumentSource interface {
	Discover(ctx context.Context, dir string, opts interfaces.LoadOptions) ([]*interfaces.Document, error)
	RenderDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ParseOptions) ([]byte, error)
}

// Config captures runtime behaviour toggles for the generator.
type Config struct {
	OutputDir    string
	StaticDir    string
	TemplatePath string
	CleanBuild   bool
	CopyAssets   bool
	CheckLinks   bool
	// UseFrontMatter lets front matter set the title and template and mark drafts.
	UseFrontMatter bool
	Workers        int
}

// Dependencies lists the collaborators required by the generator.
type Dependencies struct {
	Documents DocumentSource
	// Template overrides the template loaded from Config.TemplatePath.
	Template interfaces.PageTemplate
	Logger   interfaces.Logger
}

// BuildOptions narrows the scope of a generator run.
type BuildOptions struct {
	// DryRun renders every page but writes nothing and leaves the output untouched.
	DryRun bool
	// Clean removes the output directory first even when Config.CleanBuild is off.
	Clean bool
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	BuildID      string
	PagesBuilt   int
	PagesSkipped int
	AssetsCopied int
	BytesWritten int64
	Duration     time.Duration
	Pages        []RenderedPage
	BrokenLinks  []BrokenLink
	Errors       []error
	DryRun       bool
}

// NewService wires a generator with the provided configuration and dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	if deps.Logger == nil {
		deps.Logger = logging.NoOp()
	}
	return &service{
		cfg:  cfg,
		deps: deps,
		now:  time.Now,
	}
}

type service struct {
	cfg  Config
	deps Dependencies
	now  func() time.Time
}

func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.deps.Documents == nil {
		return nil, ErrDocumentsRequired
	}

	start := s.now()
	result := &BuildResult{
		BuildID: uuid.NewString(),
		DryRun:  opts.DryRun,
	}
	logger := logging.WithBuildID(s.deps.Logger, result.BuildID)
	ctx = logging.ContextWithFields(ctx, map[string]any{"build_id": result.BuildID})
	logger.Info("generator.build.started", "output", s.cfg.OutputDir, "dry_run", opts.DryRun)

	templates, err := s.templates()
	if err != nil {
		return nil, err
	}

	if !opts.DryRun && (s.cfg.CleanBuild || opts.Clean) {
		if err := s.Clean(ctx); err != nil {
			return nil, err
		}
	}

	writer := newArtifactWriter(s.cfg.OutputDir, opts.DryRun)
	if err := writer.EnsureDir(ctx, "."); err != nil {
		return nil, err
	}

	known := newOutputIndex()
	var errorsSlice []error

	if s.cfg.CopyAssets {
		summary, err := s.copyStatic(ctx, writer, known)
		if err != nil {
			errorsSlice = append(errorsSlice, err)
		}
		result.AssetsCopied = summary.Copied
		result.BytesWritten += summary.Bytes
	}

	docs, err := s.deps.Documents.Discover(ctx, ".", interfaces.LoadOptions{})
	if err != nil {
		return nil, fmt.Errorf("generator: discover documents: %w", err)
	}

	var mu sync.Mutex
	collect := func(outcome renderOutcome) {
		mu.Lock()
		defer mu.Unlock()
		if outcome.err != nil {
			errorsSlice = append(errorsSlice, outcome.err)
			logger.Warn("generator.page.failed", "source", outcome.page.Source, "error", outcome.err)
			return
		}
		if outcome.skipped {
			result.PagesSkipped++
			logger.Debug("generator.page.skipped", "source", outcome.page.Source)
			return
		}
		result.PagesBuilt++
		result.BytesWritten += outcome.page.Bytes
		result.Pages = append(result.Pages, outcome.page)
		known.add(outcome.page.Output)
	}

	if err := s.renderAll(ctx, docs, templates, writer, collect); err != nil {
		errorsSlice = append(errorsSlice, err)
	}

	sort.Slice(result.Pages, func(i, j int) bool {
		return result.Pages[i].Source < result.Pages[j].Source
	})

	if s.cfg.CheckLinks {
		result.BrokenLinks = checkLinks(result.Pages, known)
		for _, link := range result.BrokenLinks {
			logger.Warn("generator.link.broken", "page", link.Page, "target", link.Target, "element", link.Element)
		}
	}

	result.Duration = s.now().Sub(start)
	logger.Info("generator.build.completed", "summary", result.Summary())

	if len(errorsSlice) > 0 {
		result.Errors = append(result.Errors, errorsSlice...)
		return result, errors.Join(errorsSlice...)
	}
	return result, nil
}

func (s *service) renderAll(
	ctx context.Context,
	docs []*interfaces.Document,
	templates *templateSet,
	writer artifactWriter,
	collect func(renderOutcome),
) error {
	workers := s.effectiveWorkerCount()
	if workers <= 1 || len(docs) <= 1 {
		for _, doc := range docs {
			if err := ctx.Err(); err != nil {
				return err
			}
			collect(s.renderPage(ctx, doc, templates, writer))
		}
		return nil
	}

	jobs := make(chan *interfaces.Document)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for doc := range jobs {
				collect(s.renderPage(ctx, doc, templates, writer))
			}
		}()
	}

	for _, doc := range docs {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return ctx.Err()
		case jobs <- doc:
		}
	}
	close(jobs)
	wg.Wait()
	return nil
}

func (s *service) effectiveWorkerCount() int {
	if s.cfg.Workers > 0 {
		return s.cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (s *service) templates() (*templateSet, error) {
	fallback := s.deps.Template
	if fallback == nil {
		loaded, err := LoadTemplate(s.cfg.TemplatePath)
		if err != nil {
			return nil, err
		}
		fallback = loaded
	}
	return newTemplateSet(s.cfg.TemplatePath, fallback), nil
}

// Clean removes the output directory and everything below it.
func (s *service) Clean(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := strings.TrimSpace(s.cfg.OutputDir)
	if !safeToRemove(dir) {
		return fmt.Errorf("%w: %q", ErrUnsafeOutputDir, s.cfg.OutputDir)
	}
	if static := strings.TrimSpace(s.cfg.StaticDir); s.cfg.CopyAssets && static != "" && within(dir, static) {
		return fmt.Errorf("%w: %q contains static directory %q", ErrUnsafeOutputDir, s.cfg.OutputDir, static)
	}
	if err := removeAll(dir); err != nil {
		return fmt.Errorf("generator: clean %s: %w", dir, err)
	}
	s.deps.Logger.Debug("generator.clean.completed", "output", dir)
	return nil
}
