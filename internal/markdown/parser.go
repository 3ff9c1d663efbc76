package markdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

// ErrUnknownEngine is returned by NewParser for unsupported engine names.
var ErrUnknownEngine = errors.New("markdown: unknown parser engine")

// NewParser returns the parser selected by opts.Engine. An empty engine name
// selects the native parser.
func NewParser(opts interfaces.ParseOptions) (interfaces.MarkdownParser, error) {
	switch NormalizeEngine(opts.Engine) {
	case EngineNative:
		return NewNativeParser(opts), nil
	case EngineGoldmark:
		return NewGoldmarkParser(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, opts.Engine)
	}
}

// NormalizeEngine lower-cases the engine name and applies the default.
func NormalizeEngine(engine string) string {
	engine = strings.ToLower(strings.TrimSpace(engine))
	if engine == "" {
		return EngineNative
	}
	return engine
}
