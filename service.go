package newsdesk

import "context"

// Illustration is a generated image after it has been stored.
type Illustration struct {
	// URL is where the stored file is served.
	URL string
	// DataURL is the image itself as a data: URL.
	DataURL string
}

// StoryService produces stories from news sources.
type StoryService interface {
	// FromURL fetches an article, extracts its content and rewrites it into
	// a new story.
	FromURL(ctx context.Context, url string) (*Story, error)

	// FromText proofreads text, which may be plain text or HTML, into a story.
	FromText(ctx context.Context, text string) (*Story, error)

	// Illustrate generates an image for prompt and stores it under a name
	// derived from hint.
	Illustrate(ctx context.Context, prompt, hint string) (*Illustration, error)
}
