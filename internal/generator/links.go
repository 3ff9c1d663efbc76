package generator

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BrokenLink is a relative link or image on a built page whose target was not
// produced by the build.
type BrokenLink struct {
	Page    string
	Target  string
	Element string
}

// checkLinks scans every page for a[href] and img[src] references that
// resolve inside the site but are missing from known.
func checkLinks(pages []RenderedPage, known *outputIndex) []BrokenLink {
	var broken []BrokenLink
	for _, page := range pages {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
		if err != nil {
			continue
		}
		doc.Find("a[href], img[src]").Each(func(_ int, sel *goquery.Selection) {
			element, attr := "a", "href"
			if sel.Is("img") {
				element, attr = "img", "src"
			}
			target, _ := sel.Attr(attr)
			resolved, internal := resolveLink(page.Output, target)
			if !internal {
				return
			}
			if strings.HasPrefix(resolved, "../") || resolved == ".." || !known.has(resolved) {
				broken = append(broken, BrokenLink{
					Page:    page.Output,
					Target:  target,
					Element: element,
				})
			}
		})
	}
	return broken
}

// resolveLink maps target, as found on the page at pagePath, onto a path
// relative to the output root. External and fragment-only links are not
// internal.
func resolveLink(pagePath, target string) (string, bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", false
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}
	if strings.HasPrefix(u.Path, "/") {
		return path.Clean(strings.TrimPrefix(u.Path, "/")), true
	}
	return path.Join(path.Dir(pagePath), u.Path), true
}
