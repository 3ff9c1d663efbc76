package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-sitegen/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{
			name:   "missing content dir",
			mutate: func(c *runtimeconfig.Config) { c.Markdown.ContentDir = " " },
			want:   runtimeconfig.ErrMarkdownContentDirRequired,
		},
		{
			name:   "unknown engine",
			mutate: func(c *runtimeconfig.Config) { c.Markdown.Engine = "pandoc" },
			want:   runtimeconfig.ErrMarkdownEngineUnknown,
		},
		{
			name:   "extensions on native engine",
			mutate: func(c *runtimeconfig.Config) { c.Markdown.Parser.Extensions = []string{"table"} },
			want:   runtimeconfig.ErrGoldmarkExtensionsNotNative,
		},
		{
			name:   "missing output dir",
			mutate: func(c *runtimeconfig.Config) { c.Generator.OutputDir = "" },
			want:   runtimeconfig.ErrGeneratorOutputDirRequired,
		},
		{
			name:   "missing template",
			mutate: func(c *runtimeconfig.Config) { c.Generator.TemplatePath = "" },
			want:   runtimeconfig.ErrGeneratorTemplateRequired,
		},
		{
			name:   "copy assets without static dir",
			mutate: func(c *runtimeconfig.Config) { c.Generator.StaticDir = "" },
			want:   runtimeconfig.ErrGeneratorStaticDirRequired,
		},
		{
			name:   "negative workers",
			mutate: func(c *runtimeconfig.Config) { c.Generator.Workers = -1 },
			want:   runtimeconfig.ErrGeneratorWorkersInvalid,
		},
		{
			name:   "output equals content",
			mutate: func(c *runtimeconfig.Config) { c.Generator.OutputDir = "content" },
			want:   runtimeconfig.ErrGeneratorOutputOverlaps,
		},
		{
			name:   "output contains content",
			mutate: func(c *runtimeconfig.Config) { c.Generator.OutputDir = "." },
			want:   runtimeconfig.ErrGeneratorOutputOverlaps,
		},
		{
			name: "static inside output",
			mutate: func(c *runtimeconfig.Config) {
				c.Generator.OutputDir = "site"
				c.Generator.StaticDir = "site/assets"
			},
			want: runtimeconfig.ErrGeneratorStaticOverlaps,
		},
		{
			name:   "static equals output",
			mutate: func(c *runtimeconfig.Config) { c.Generator.StaticDir = "public" },
			want:   runtimeconfig.ErrGeneratorStaticOverlaps,
		},
		{
			name:   "output inside static",
			mutate: func(c *runtimeconfig.Config) { c.Generator.OutputDir = "static/public" },
			want:   runtimeconfig.ErrGeneratorStaticOverlaps,
		},
		{
			name:   "missing logging provider",
			mutate: func(c *runtimeconfig.Config) { c.Logging.Provider = "" },
			want:   runtimeconfig.ErrLoggingProviderRequired,
		},
		{
			name:   "unknown logging provider",
			mutate: func(c *runtimeconfig.Config) { c.Logging.Provider = "syslog" },
			want:   runtimeconfig.ErrLoggingProviderUnknown,
		},
		{
			name:   "invalid level",
			mutate: func(c *runtimeconfig.Config) { c.Logging.Level = "loud" },
			want:   runtimeconfig.ErrLoggingLevelInvalid,
		},
		{
			name: "invalid gologger format",
			mutate: func(c *runtimeconfig.Config) {
				c.Logging.Provider = "gologger"
				c.Logging.Format = "xml"
			},
			want: runtimeconfig.ErrLoggingFormatInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidate_AllowsGoldmarkExtensions(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Markdown.Engine = "goldmark"
	cfg.Markdown.Parser.Extensions = []string{"table", "strikethrough"}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_SkipsLoggingWhenFeatureDisabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = false
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_AllowsSiblingOutput(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Markdown.ContentDir = "site/content"
	cfg.Generator.OutputDir = "site/public"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_IgnoresStaticOverlapWithoutAssetCopy(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Generator.CopyAssets = false
	cfg.Generator.OutputDir = "site"
	cfg.Generator.StaticDir = "site/assets"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}
