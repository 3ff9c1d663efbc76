package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Summary renders a one line description of the build for logs and the CLI,
// e.g. "12 pages built, 1 skipped, 3 assets copied, 48 kB written in 35ms".
func (r *BuildResult) Summary() string {
	if r == nil {
		return ""
	}
	written := "written"
	if r.DryRun {
		written = "rendered (dry run)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s pages built, %d skipped, %d assets copied, %s %s in %s",
		humanize.Comma(int64(r.PagesBuilt)),
		r.PagesSkipped,
		r.AssetsCopied,
		humanize.Bytes(uint64(max(r.BytesWritten, 0))),
		written,
		r.Duration.Round(time.Millisecond),
	)
	if n := len(r.BrokenLinks); n > 0 {
		fmt.Fprintf(&b, ", %d broken %s", n, plural(n, "link", "links"))
	}
	if n := len(r.Errors); n > 0 {
		fmt.Fprintf(&b, ", %d %s", n, plural(n, "error", "errors"))
	}
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
