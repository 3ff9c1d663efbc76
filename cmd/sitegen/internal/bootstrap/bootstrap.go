package bootstrap

import (
	"fmt"
	"io"
	"strings"

	sitecmd "github.com/goliatone/go-sitegen/internal/commands/site"
	"github.com/goliatone/go-sitegen/internal/generator"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/logging/console"
	"github.com/goliatone/go-sitegen/internal/logging/gologger"
	"github.com/goliatone/go-sitegen/internal/markdown"
	"github.com/goliatone/go-sitegen/internal/runtimeconfig"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// Options captures process level wiring that does not belong in the runtime config.
type Options struct {
	// LogWriter receives console log lines. Nil means stdout.
	LogWriter io.Writer
	// Registry receives the site command handlers. Nil skips registration.
	Registry sitecmd.CommandRegistry
}

// Module bundles the services the sitegen CLI drives.
type Module struct {
	Config    runtimeconfig.Config
	Provider  interfaces.LoggerProvider
	Logger    interfaces.Logger
	Markdown  *markdown.Service
	Generator generator.Service
	Commands  *sitecmd.HandlerSet
}

// ParseOptions maps the markdown section of cfg onto parser options.
func ParseOptions(cfg runtimeconfig.Config) interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Engine:     markdown.NormalizeEngine(cfg.Markdown.Engine),
		HeadingIDs: cfg.Markdown.HeadingIDs,
		Extensions: cloneStrings(cfg.Markdown.Parser.Extensions),
		HardWraps:  cfg.Markdown.Parser.HardWraps,
		SafeMode:   cfg.Markdown.Parser.SafeMode,
	}
}

// NewLoggerProvider selects the provider named by cfg.Logging. It returns nil
// when the logger feature is disabled.
func NewLoggerProvider(cfg runtimeconfig.Config, w io.Writer) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	case "", "console":
		level, err := console.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return nil, err
		}
		return console.NewProvider(console.Options{Writer: w, MinLevel: level}), nil
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrLoggingProviderUnknown, cfg.Logging.Provider)
	}
}

// BuildModule validates cfg and wires the markdown service, the generator and
// the site command handlers.
func BuildModule(cfg runtimeconfig.Config, opts Options) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := NewLoggerProvider(cfg, opts.LogWriter)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	parse := ParseOptions(cfg)
	docs, err := markdown.NewService(markdown.Config{
		BasePath:  cfg.Markdown.ContentDir,
		Pattern:   cfg.Markdown.Pattern,
		Recursive: cfg.Markdown.Recursive,
		Parser:    parse,
	}, markdown.WithLogger(logging.MarkdownLogger(provider)))
	if err != nil {
		return nil, fmt.Errorf("initialise markdown service: %w", err)
	}

	gen := generator.NewService(generator.Config{
		OutputDir:      cfg.Generator.OutputDir,
		StaticDir:      cfg.Generator.StaticDir,
		TemplatePath:   cfg.Generator.TemplatePath,
		CleanBuild:     cfg.Generator.CleanBuild,
		CopyAssets:     cfg.Generator.CopyAssets,
		CheckLinks:     cfg.Generator.CheckLinks,
		UseFrontMatter: cfg.Markdown.FrontMatter,
		Workers:        cfg.Generator.Workers,
	}, generator.Dependencies{
		Documents: docs,
		Logger:    logging.GeneratorLogger(provider),
	})

	handlers, err := sitecmd.RegisterSiteCommands(opts.Registry, gen, parse, provider)
	if err != nil {
		return nil, fmt.Errorf("register site commands: %w", err)
	}

	return &Module{
		Config:    cfg,
		Provider:  provider,
		Logger:    logging.ModuleLogger(provider, logging.RootModule),
		Markdown:  docs,
		Generator: gen,
		Commands:  handlers,
	}, nil
}

// SplitList parses a comma separated flag value into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
