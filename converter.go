package newsdesk

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an HTMLSanitizer).
	Convert(html string) (string, error)
}

// HTMLSanitizer strips unsafe or irrelevant markup from user-supplied HTML.
type HTMLSanitizer interface {
	Sanitize(html string) string
}
