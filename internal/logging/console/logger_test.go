package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/logging/console"
)

func TestConsoleLogger_WritesLine(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 3, 14, 15, 9, 26, 0, time.UTC)

	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: console.LevelDebug,
	})

	logger := logging.ModuleLogger(provider, logging.GeneratorModule)
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"run": "nightly",
	})
	logger = logger.WithContext(ctx)

	buildID := uuid.MustParse("8a51a9b1-2d30-4b2c-8ecd-2c0b87dfa999")
	logger.Info("generator.build.completed",
		"build_id", buildID,
		"pages", 3,
		"error", errors.New("two words"),
	)

	got := buf.String()
	want := "2024-03-14T15:09:26Z INFO  [sitegen.generator] generator.build.completed " +
		`build_id=8a51a9b1-2d30-4b2c-8ecd-2c0b87dfa999 error="two words" module=sitegen.generator pages=3 run=nightly` + "\n"
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %q\ngot:  %q", want, got)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		MinLevel: console.LevelInfo,
	})

	logger := provider.GetLogger("sitegen.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected single log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "included.info") {
		t.Fatalf("expected info log to be written, got %s", lines[0])
	}
}

func TestConsoleLogger_OddArguments(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{Writer: &buf})

	provider.GetLogger("").Warn("odd", "key", "value", "dangling")

	line := strings.TrimSpace(buf.String())
	if !strings.HasSuffix(line, "WARN  odd arg2=dangling key=value") {
		t.Fatalf("unexpected line %q", line)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]console.Level{
		"":        console.LevelInfo,
		"TRACE":   console.LevelTrace,
		"debug":   console.LevelDebug,
		"warning": console.LevelWarn,
		" error ": console.LevelError,
		"fatal":   console.LevelFatal,
	}
	for input, want := range cases {
		got, err := console.ParseLevel(input)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", input, got, want)
		}
	}

	if _, err := console.ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
