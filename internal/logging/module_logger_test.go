package logging

import (
	"context"
	"maps"
	"testing"

	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	r.fields = append(r.fields, maps.Clone(fields))
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "sitegen.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerAnnotatesModule(t *testing.T) {
	cases := []struct {
		name   string
		build  func(interfaces.LoggerProvider) interfaces.Logger
		module string
	}{
		{"explicit", func(p interfaces.LoggerProvider) interfaces.Logger { return ModuleLogger(p, "custom") }, "custom"},
		{"default", func(p interfaces.LoggerProvider) interfaces.Logger { return ModuleLogger(p, "") }, RootModule},
		{"markdown", MarkdownLogger, MarkdownModule},
		{"generator", GeneratorLogger, GeneratorModule},
		{"commands", CommandsLogger, CommandsModule},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recordingLogger{}
			provider := &stubProvider{logger: rec}

			tc.build(provider)

			if len(provider.requested) != 1 || provider.requested[0] != tc.module {
				t.Fatalf("expected module %s, got %v", tc.module, provider.requested)
			}
			if len(rec.fields) != 1 || rec.fields[0][fieldModule] != tc.module {
				t.Fatalf("expected module field %s, got %v", tc.module, rec.fields)
			}
		})
	}
}

func TestWithDocumentContext(t *testing.T) {
	rec := &recordingLogger{}

	WithDocumentContext(rec, " blog/post.md ", "render")
	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	if rec.fields[0][fieldDocument] != "blog/post.md" || rec.fields[0][fieldAction] != "render" {
		t.Fatalf("unexpected fields %v", rec.fields[0])
	}

	WithDocumentContext(rec, "", "  ")
	if len(rec.fields) != 1 {
		t.Fatalf("expected blank values to skip WithFields, got %v", rec.fields)
	}
}

func TestWithBuildID(t *testing.T) {
	rec := &recordingLogger{}
	WithBuildID(rec, "")
	WithBuildID(rec, "b-1")
	if len(rec.fields) != 1 || rec.fields[0][fieldBuildID] != "b-1" {
		t.Fatalf("unexpected fields %v", rec.fields)
	}
}

func TestContextFieldsMerge(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"a": 1, "b": 2})
	ctx = ContextWithFields(ctx, map[string]any{"b": 3})

	fields := ContextFields(ctx)
	if fields["a"] != 1 || fields["b"] != 3 {
		t.Fatalf("unexpected merged fields %v", fields)
	}

	fields["a"] = 99
	if ContextFields(ctx)["a"] != 1 {
		t.Fatalf("expected ContextFields to return a copy")
	}

	if ContextFields(context.Background()) != nil {
		t.Fatalf("expected nil fields on bare context")
	}
}
