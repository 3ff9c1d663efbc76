package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// Module names handed to the LoggerProvider.
const (
	RootModule      = "sitegen"
	MarkdownModule  = "sitegen.markdown"
	GeneratorModule = "sitegen.generator"
	CommandsModule  = "sitegen.commands"
)

const (
	fieldModule   = "module"
	fieldDocument = "markdown_path"
	fieldAction   = "action"
	fieldBuildID  = "build_id"
)

// ModuleLogger resolves the logger for module from provider and tags it with
// a module field. A nil provider yields the no-op logger.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = RootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}
	return WithFields(logger, map[string]any{fieldModule: module})
}

// MarkdownLogger returns the logger used by the markdown service.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, MarkdownModule)
}

// GeneratorLogger returns the logger used by the site builder.
func GeneratorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, GeneratorModule)
}

// CommandsLogger returns the logger used by command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, CommandsModule)
}

// WithDocumentContext tags logger with the document path and the action being
// performed on it. Blank values are skipped.
func WithDocumentContext(logger interfaces.Logger, path, action string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldDocument] = trimmed
	}
	if trimmed := strings.TrimSpace(action); trimmed != "" {
		fields[fieldAction] = trimmed
	}
	return WithFields(logger, fields)
}

// WithBuildID tags logger with the id of a generator run.
func WithBuildID(logger interfaces.Logger, buildID string) interfaces.Logger {
	if strings.TrimSpace(buildID) == "" {
		return logger
	}
	return WithFields(logger, map[string]any{fieldBuildID: buildID})
}

// NoOp returns a logger that discards everything.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
