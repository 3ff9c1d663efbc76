package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-command/dispatcher"

	"github.com/goliatone/go-sitegen/cmd/sitegen/internal/bootstrap"
	sitecmd "github.com/goliatone/go-sitegen/internal/commands/site"
	"github.com/goliatone/go-sitegen/internal/generator"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/runtimeconfig"
)

var (
	moduleBuilder           = bootstrap.BuildModule
	stdout        io.Writer = os.Stdout
	stderr        io.Writer = os.Stderr
)

const usage = `usage: sitegen <command> [flags]

commands:
  build    render the content directory into the output directory
  render   convert a single markdown file to an HTML fragment`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("sitegen: %v", err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	switch args[0] {
	case "build":
		return runBuild(args[1:])
	case "render":
		return runRender(args[1:])
	case "-h", "--help", "help":
		fmt.Fprintln(stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

type sharedFlags struct {
	engine     *string
	headingIDs *bool
	extensions *string
	logLevel   *string
	logFormat  *string
	logProv    *string
	quiet      *bool
}

func registerShared(fs *flag.FlagSet, defaults runtimeconfig.Config) sharedFlags {
	return sharedFlags{
		engine:     fs.String("engine", defaults.Markdown.Engine, "Markdown engine: native or goldmark"),
		headingIDs: fs.Bool("heading-ids", defaults.Markdown.HeadingIDs, "Add slug ids to headings"),
		extensions: fs.String("extensions", "", "Comma separated goldmark extensions (table, strikethrough, linkify, tasklist)"),
		logLevel:   fs.String("log-level", defaults.Logging.Level, "Log level"),
		logFormat:  fs.String("log-format", defaults.Logging.Format, "go-logger output format: json, console or pretty"),
		logProv:    fs.String("log-provider", defaults.Logging.Provider, "Logging provider: console or gologger"),
		quiet:      fs.Bool("quiet", false, "Disable logging"),
	}
}

func (f sharedFlags) apply(cfg *runtimeconfig.Config) {
	cfg.Markdown.Engine = *f.engine
	cfg.Markdown.HeadingIDs = *f.headingIDs
	cfg.Markdown.Parser.Extensions = bootstrap.SplitList(*f.extensions)
	cfg.Logging.Level = *f.logLevel
	cfg.Logging.Format = *f.logFormat
	cfg.Logging.Provider = *f.logProv
	cfg.Features.Logger = !*f.quiet
}

func runBuild(args []string) error {
	cfg := runtimeconfig.DefaultConfig()

	fs := flag.NewFlagSet("sitegen build", flag.ContinueOnError)
	fs.SetOutput(stderr)
	contentDir := fs.String("content-dir", cfg.Markdown.ContentDir, "Path to the markdown content root")
	pattern := fs.String("pattern", cfg.Markdown.Pattern, "Glob pattern applied when discovering markdown files")
	recursive := fs.Bool("recursive", cfg.Markdown.Recursive, "Descend into content subdirectories")
	frontMatter := fs.Bool("front-matter", cfg.Markdown.FrontMatter, "Honour title, template and draft front matter keys")
	outputDir := fs.String("output-dir", cfg.Generator.OutputDir, "Directory receiving the generated site")
	staticDir := fs.String("static-dir", cfg.Generator.StaticDir, "Directory copied verbatim into the output")
	templatePath := fs.String("template", cfg.Generator.TemplatePath, "Page template with {{ Title }} and {{ Content }} placeholders")
	cleanBuild := fs.Bool("clean-build", cfg.Generator.CleanBuild, "Remove the output directory before every build")
	copyAssets := fs.Bool("copy-assets", cfg.Generator.CopyAssets, "Copy the static directory")
	checkLinks := fs.Bool("check-links", cfg.Generator.CheckLinks, "Report links to pages or assets that were not generated")
	workers := fs.Int("workers", cfg.Generator.Workers, "Number of render workers (0 uses GOMAXPROCS)")
	dryRun := fs.Bool("dry-run", false, "Render without writing any output")
	clean := fs.Bool("clean", false, "Force removal of the output directory before building")
	shared := registerShared(fs, cfg)

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Markdown.ContentDir = *contentDir
	cfg.Markdown.Pattern = *pattern
	cfg.Markdown.Recursive = *recursive
	cfg.Markdown.FrontMatter = *frontMatter
	cfg.Generator.OutputDir = *outputDir
	cfg.Generator.StaticDir = *staticDir
	cfg.Generator.TemplatePath = *templatePath
	cfg.Generator.CleanBuild = *cleanBuild
	cfg.Generator.CopyAssets = *copyAssets
	cfg.Generator.CheckLinks = *checkLinks
	cfg.Generator.Workers = *workers
	shared.apply(&cfg)

	registry := &sitecmd.DispatcherRegistry{}
	defer registry.Close()

	module, err := moduleBuilder(cfg, bootstrap.Options{LogWriter: stderr, Registry: registry})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	var result *generator.BuildResult
	err = dispatcher.Dispatch(context.Background(), sitecmd.BuildSiteCommand{
		DryRun:         *dryRun,
		Clean:          *clean,
		ResultCallback: func(r *generator.BuildResult) { result = r },
	})
	if result != nil {
		fmt.Fprintln(stdout, result.Summary())
		for _, link := range result.BrokenLinks {
			module.Logger.Warn("site.build.broken_link", "page", link.Page, "target", link.Target, "element", link.Element)
		}
	}
	if err != nil {
		return fmt.Errorf("build site: %w", err)
	}
	return nil
}

func runRender(args []string) error {
	cfg := runtimeconfig.DefaultConfig()

	fs := flag.NewFlagSet("sitegen render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", "", "Write HTML to this file instead of stdout")
	dump := fs.Bool("dump", false, "Print the node tree instead of HTML (native engine only)")
	shared := registerShared(fs, cfg)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("render expects exactly one markdown file")
	}
	shared.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	provider, err := bootstrap.NewLoggerProvider(cfg, stderr)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	handler := sitecmd.NewRenderFileHandler(bootstrap.ParseOptions(cfg), logging.CommandsLogger(provider))
	cmd := sitecmd.RenderFileCommand{
		Path:   fs.Arg(0),
		Output: *output,
		Engine: cfg.Markdown.Engine,
		Dump:   *dump,
		Writer: stdout,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("render %s: %w", cmd.Path, err)
	}
	return nil
}
