package runtimeconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrMarkdownContentDirRequired  = errors.New("sitegen config: markdown content directory is required")
	ErrMarkdownEngineUnknown       = errors.New("sitegen config: markdown engine is invalid")
	ErrGeneratorOutputDirRequired  = errors.New("sitegen config: generator output directory is required")
	ErrGeneratorTemplateRequired   = errors.New("sitegen config: generator template path is required")
	ErrGeneratorStaticDirRequired  = errors.New("sitegen config: static directory is required when copying assets")
	ErrGeneratorWorkersInvalid     = errors.New("sitegen config: generator workers must be zero or positive")
	ErrGeneratorOutputOverlaps     = errors.New("sitegen config: output directory must not contain or equal the content directory")
	ErrGeneratorStaticOverlaps     = errors.New("sitegen config: output and static directories must not contain each other")
	ErrLoggingProviderRequired     = errors.New("sitegen config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown      = errors.New("sitegen config: logging provider is invalid")
	ErrLoggingLevelInvalid         = errors.New("sitegen config: logging level is invalid")
	ErrLoggingFormatInvalid        = errors.New("sitegen config: logging format is invalid")
	ErrGoldmarkExtensionsNotNative = errors.New("sitegen config: parser extensions require the goldmark engine")
)

// Config aggregates everything the sitegen CLI needs to build a site.
type Config struct {
	Markdown  MarkdownConfig
	Generator GeneratorConfig
	Logging   LoggingConfig
	Features  Features
}

// Features toggles optional behaviour.
type Features struct {
	Logger bool
}

// MarkdownConfig captures content discovery and parser behaviour.
type MarkdownConfig struct {
	ContentDir string
	Pattern    string
	Recursive  bool
	// Engine is "native" or "goldmark".
	Engine      string
	HeadingIDs  bool
	FrontMatter bool
	Parser      MarkdownParserConfig
}

// MarkdownParserConfig holds options only the goldmark engine understands.
type MarkdownParserConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// GeneratorConfig captures behaviour for the static site build.
type GeneratorConfig struct {
	OutputDir    string
	StaticDir    string
	TemplatePath string
	CleanBuild   bool
	CopyAssets   bool
	CheckLinks   bool
	// Workers bounds concurrent page renders. Zero means GOMAXPROCS.
	Workers int
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig mirrors the directory layout of a typical site:
// content/, static/, template.html and public/.
func DefaultConfig() Config {
	return Config{
		Markdown: MarkdownConfig{
			ContentDir:  "content",
			Pattern:     "*.md",
			Recursive:   true,
			Engine:      "native",
			FrontMatter: true,
		},
		Generator: GeneratorConfig{
			OutputDir:    "public",
			StaticDir:    "static",
			TemplatePath: "template.html",
			CleanBuild:   true,
			CopyAssets:   true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{
			Logger: true,
		},
	}
}

// Validate performs consistency checks and returns the first violation.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
		return ErrMarkdownContentDirRequired
	}
	engine := strings.ToLower(strings.TrimSpace(cfg.Markdown.Engine))
	switch engine {
	case "", "native":
		if len(cfg.Markdown.Parser.Extensions) > 0 {
			return ErrGoldmarkExtensionsNotNative
		}
	case "goldmark":
	default:
		return fmt.Errorf("%w: %s", ErrMarkdownEngineUnknown, cfg.Markdown.Engine)
	}

	if strings.TrimSpace(cfg.Generator.OutputDir) == "" {
		return ErrGeneratorOutputDirRequired
	}
	if strings.TrimSpace(cfg.Generator.TemplatePath) == "" {
		return ErrGeneratorTemplateRequired
	}
	if cfg.Generator.CopyAssets && strings.TrimSpace(cfg.Generator.StaticDir) == "" {
		return ErrGeneratorStaticDirRequired
	}
	if cfg.Generator.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrGeneratorWorkersInvalid, cfg.Generator.Workers)
	}
	if overlaps(cfg.Generator.OutputDir, cfg.Markdown.ContentDir) {
		return fmt.Errorf("%w: %s", ErrGeneratorOutputOverlaps, cfg.Generator.OutputDir)
	}
	if static := strings.TrimSpace(cfg.Generator.StaticDir); cfg.Generator.CopyAssets && static != "" {
		if overlaps(cfg.Generator.OutputDir, static) || overlaps(static, cfg.Generator.OutputDir) {
			return fmt.Errorf("%w: %s, %s", ErrGeneratorStaticOverlaps, cfg.Generator.OutputDir, static)
		}
	}

	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// overlaps reports whether output is the content directory or one of its
// parents, in which case a clean build would delete content.
func overlaps(output, content string) bool {
	out, err := filepath.Abs(output)
	if err != nil {
		return false
	}
	src, err := filepath.Abs(content)
	if err != nil {
		return false
	}
	if out == src {
		return true
	}
	rel, err := filepath.Rel(out, src)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
