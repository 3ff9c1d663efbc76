package sitecmd

import (
	"io"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-sitegen/internal/generator"
	"github.com/goliatone/go-sitegen/internal/markdown"
)

const (
	buildSiteMessageType  = "sitegen.site.build"
	renderFileMessageType = "sitegen.site.render_file"
)

// BuildSiteCommand runs a full generator build.
type BuildSiteCommand struct {
	// DryRun renders every page without touching the output directory.
	DryRun bool `json:"dry_run,omitempty"`
	// Clean forces removal of the output directory before building.
	Clean bool `json:"clean,omitempty"`
	// ResultCallback receives the build result, including partial results of
	// failed builds.
	ResultCallback func(*generator.BuildResult) `json:"-"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// Validate rejects combinations that would delete output during a dry run.
func (m BuildSiteCommand) Validate() error {
	errs := validation.Errors{}
	if m.DryRun && m.Clean {
		errs["clean"] = validation.NewError("sitegen.site.build.clean_dry_run", "clean cannot be combined with dry_run")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RenderFileCommand converts a single Markdown file and writes the HTML
// fragment to Output or, when Output is empty, to Writer.
type RenderFileCommand struct {
	Path   string `json:"path"`
	Output string `json:"output,omitempty"`
	// Engine overrides the configured parser engine.
	Engine string `json:"engine,omitempty"`
	// Dump pretty prints the node tree instead of rendering HTML.
	Dump   bool      `json:"dump,omitempty"`
	Writer io.Writer `json:"-"`
}

// Type implements command.Message.
func (RenderFileCommand) Type() string { return renderFileMessageType }

// Validate checks the source path, engine and output target.
func (m RenderFileCommand) Validate() error {
	m.Engine = markdown.NormalizeEngine(m.Engine)
	return validation.ValidateStruct(&m,
		validation.Field(&m.Path,
			validation.Required,
			validation.By(func(value any) error {
				ext := strings.ToLower(filepath.Ext(value.(string)))
				if ext != ".md" && ext != ".markdown" {
					return validation.NewError("sitegen.site.render_file.path_extension", "path must point to a .md or .markdown file")
				}
				return nil
			}),
		),
		validation.Field(&m.Output,
			validation.When(m.Output != "", validation.By(func(value any) error {
				if filepath.Clean(value.(string)) == filepath.Clean(m.Path) {
					return validation.NewError("sitegen.site.render_file.output_overwrites_source", "output must differ from path")
				}
				return nil
			})),
		),
		validation.Field(&m.Engine,
			validation.In(markdown.EngineNative, markdown.EngineGoldmark).Error("engine must be native or goldmark"),
		),
		validation.Field(&m.Dump,
			validation.When(m.Dump && m.Engine == markdown.EngineGoldmark,
				validation.Empty.Error("dump is only supported by the native engine")),
		),
	)
}
