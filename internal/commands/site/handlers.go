package sitecmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/k0kubun/pp/v3"

	"github.com/goliatone/go-sitegen/internal/block"
	"github.com/goliatone/go-sitegen/internal/commands"
	"github.com/goliatone/go-sitegen/internal/generator"
	"github.com/goliatone/go-sitegen/internal/markdown"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// ErrGeneratorMissing is returned when a build is requested without a generator.
var ErrGeneratorMissing = errors.New("sitegen: generator service is not configured")

// BuildSiteHandler runs generator builds through the shared command handler.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler constructs a handler wired to service.
func NewBuildSiteHandler(service generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BuildSiteCommand]) *BuildSiteHandler {
	logger = commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		if service == nil {
			return ErrGeneratorMissing
		}
		result, err := service.Build(ctx, generator.BuildOptions{
			DryRun: msg.DryRun,
			Clean:  msg.Clean,
		})
		if msg.ResultCallback != nil && result != nil {
			msg.ResultCallback(result)
		}
		return err
	}

	handlerOpts := []commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](logger),
		commands.WithOperation[BuildSiteCommand]("site.build"),
		commands.WithMessageFields(func(msg BuildSiteCommand) map[string]any {
			fields := map[string]any{}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			if msg.Clean {
				fields["clean"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildSiteCommand]()),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildSiteCommand].
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RenderFileHandler converts one Markdown file outside of a site build.
type RenderFileHandler struct {
	inner *commands.Handler[RenderFileCommand]
}

// NewRenderFileHandler constructs a handler that parses with defaults unless
// the message overrides the engine.
func NewRenderFileHandler(defaults interfaces.ParseOptions, logger interfaces.Logger, opts ...commands.HandlerOption[RenderFileCommand]) *RenderFileHandler {
	logger = commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg RenderFileCommand) error {
		source, err := os.ReadFile(msg.Path)
		if err != nil {
			return fmt.Errorf("render file: %w", err)
		}
		doc, err := markdown.BuildDocument(msg.Path, source, time.Now())
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		out, closeOut, err := openOutput(msg)
		if err != nil {
			return err
		}
		defer closeOut()

		if msg.Dump {
			root, err := markdown.ConvertDocumentWithOptions(string(doc.Body), block.Options{HeadingIDs: defaults.HeadingIDs})
			if err != nil {
				return err
			}
			printer := pp.New()
			printer.SetColoringEnabled(msg.Output == "" && msg.Writer == nil)
			_, err = printer.Fprintln(out, root)
			return err
		}

		parseOpts := defaults
		if msg.Engine != "" {
			parseOpts.Engine = msg.Engine
		}
		parser, err := markdown.NewParser(parseOpts)
		if err != nil {
			return err
		}
		html, err := parser.Parse(doc.Body)
		if err != nil {
			return err
		}
		if _, err := out.Write(append(html, '\n')); err != nil {
			return fmt.Errorf("render file: write output: %w", err)
		}
		logger.Debug("site.render_file.completed", "path", msg.Path, "bytes", len(html))
		return nil
	}

	handlerOpts := []commands.HandlerOption[RenderFileCommand]{
		commands.WithLogger[RenderFileCommand](logger),
		commands.WithOperation[RenderFileCommand]("site.render_file"),
		commands.WithTimeout[RenderFileCommand](30 * time.Second),
		commands.WithMessageFields(func(msg RenderFileCommand) map[string]any {
			return map[string]any{"path": msg.Path, "dump": msg.Dump}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[RenderFileCommand]()),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderFileHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[RenderFileCommand].
func (h *RenderFileHandler) Execute(ctx context.Context, msg RenderFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

func openOutput(msg RenderFileCommand) (io.Writer, func(), error) {
	if msg.Output == "" {
		if msg.Writer != nil {
			return msg.Writer, func() {}, nil
		}
		return os.Stdout, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(msg.Output), 0o755); err != nil {
		return nil, nil, fmt.Errorf("render file: %w", err)
	}
	file, err := os.Create(msg.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("render file: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}
