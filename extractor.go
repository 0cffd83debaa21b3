package postcraft

// ExtractResult holds the article extracted from an HTML page.
type ExtractResult struct {
	// Title is the article title taken from page metadata.
	Title string

	// ContentHTML is the article body as clean HTML.
	// Boilerplate (nav, footer, sidebar, comments) has been removed.
	ContentHTML string
}

// Extractor extracts the main article from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
