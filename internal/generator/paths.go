package generator

import (
	"path"
	"strings"
	"sync"
)

// outputPath maps a content path such as "blog/post.md" to "blog/post.html".
func outputPath(source string) string {
	clean := path.Clean(strings.TrimPrefix(source, "/"))
	return strings.TrimSuffix(clean, path.Ext(clean)) + ".html"
}

// outputIndex tracks every path a build produces, relative to the output root.
type outputIndex struct {
	mu    sync.RWMutex
	paths map[string]struct{}
}

func newOutputIndex() *outputIndex {
	return &outputIndex{paths: map[string]struct{}{}}
}

func (i *outputIndex) add(p string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.paths[path.Clean(p)] = struct{}{}
}

// has reports whether p exists, treating directories as their index.html.
func (i *outputIndex) has(p string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	p = path.Clean(p)
	if _, ok := i.paths[p]; ok {
		return true
	}
	_, ok := i.paths[path.Join(p, "index.html")]
	return ok
}
