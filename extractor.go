package newsdesk

// Extraction holds the article isolated from a full HTML page.
type Extraction struct {
	// Title is the article headline, or empty when none could be found.
	Title string

	// Body is the article text with whitespace normalized.
	Body string
}

// Extractor isolates the main article of an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the article title and body.
	// Returns EINVALID for empty input and EUNSUPPORTED when the page
	// yields no text at all.
	Extract(html string) (*Extraction, error)
}
