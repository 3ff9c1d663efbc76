package interfaces

// PageData is the view model handed to a page template.
type PageData struct {
	Title   string
	Content string
	Path    string
	Meta    map[string]any
}

// PageTemplate renders a full HTML page around converted Markdown content.
type PageTemplate interface {
	Execute(page PageData) (string, error)
}
