package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSite(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"content/index.md":       "# Home\n\nWelcome to the **site**.\n\n[About](/about.html)",
		"content/about.md":       "# About\n\nA *small* site.",
		"content/notes/draft.md": "---\ndraft: true\n---\n# Draft\n",
		"static/css/site.css":    "body{}",
		"template.html":          "<html><title>{{ Title }}</title><body>{{ Content }}</body></html>",
	}
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	origOut, origErr := stdout, stderr
	stdout, stderr = &out, &bytes.Buffer{}
	t.Cleanup(func() { stdout, stderr = origOut, origErr })
	return &out
}

func siteArgs(root string, extra ...string) []string {
	args := []string{
		"build",
		"-content-dir", filepath.Join(root, "content"),
		"-output-dir", filepath.Join(root, "public"),
		"-static-dir", filepath.Join(root, "static"),
		"-template", filepath.Join(root, "template.html"),
		"-quiet",
	}
	return append(args, extra...)
}

func TestRunBuildGeneratesSite(t *testing.T) {
	root := writeSite(t)
	out := captureOutput(t)

	if err := run(siteArgs(root, "-check-links")); err != nil {
		t.Fatalf("run build: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(root, "public", "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	want := `<html><title>Home</title><body><div><h1>Home</h1><p>Welcome to the <b>site</b>.</p><p><a href="/about.html">About</a></p></div></body></html>`
	if string(index) != want {
		t.Fatalf("unexpected index\nwant %s\n got %s", want, index)
	}
	if _, err := os.Stat(filepath.Join(root, "public", "css", "site.css")); err != nil {
		t.Fatalf("expected static asset copied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "public", "notes", "draft.html")); !os.IsNotExist(err) {
		t.Fatalf("expected draft to be skipped, stat err %v", err)
	}
	if !strings.Contains(out.String(), "2 pages built") {
		t.Fatalf("expected summary on stdout, got %q", out.String())
	}
}

func TestRunBuildDryRunWritesNothing(t *testing.T) {
	root := writeSite(t)
	captureOutput(t)

	if err := run(siteArgs(root, "-dry-run")); err != nil {
		t.Fatalf("run build: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "public")); !os.IsNotExist(err) {
		t.Fatalf("expected no output directory, stat err %v", err)
	}
}

func TestRunBuildRejectsInvalidConfig(t *testing.T) {
	root := writeSite(t)
	captureOutput(t)

	if err := run(siteArgs(root, "-engine", "blackfriday")); err == nil {
		t.Fatal("expected unknown engine to fail")
	}
}

func TestRunRenderWritesFragment(t *testing.T) {
	root := writeSite(t)
	out := captureOutput(t)

	if err := run([]string{"render", "-quiet", filepath.Join(root, "content", "about.md")}); err != nil {
		t.Fatalf("run render: %v", err)
	}
	if out.String() != "<div><h1>About</h1><p>A <i>small</i> site.</p></div>\n" {
		t.Fatalf("unexpected fragment %q", out.String())
	}
}

func TestRunRequiresKnownCommand(t *testing.T) {
	captureOutput(t)
	if err := run(nil); err == nil {
		t.Fatal("expected usage error without a command")
	}
	if err := run([]string{"serve"}); err == nil {
		t.Fatal("expected unknown command error")
	}
}
