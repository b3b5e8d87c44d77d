// Package editor turns news sources into rewritten stories. It wires the
// fetch, extraction, rewriting and illustration services into the request
// pipelines served over HTTP.
package editor

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/fwojciec/newsdesk"
	"github.com/google/uuid"
)

// Ensure Editor implements newsdesk.StoryService at compile time.
var _ newsdesk.StoryService = (*Editor)(nil)

// Editor orchestrates story production. Every remote call is made at most
// once per request.
type Editor struct {
	Fetcher     newsdesk.Fetcher
	Extractor   newsdesk.Extractor
	Sanitizer   newsdesk.HTMLSanitizer
	Converter   newsdesk.Converter
	Rewriter    newsdesk.Rewriter
	Illustrator newsdesk.Illustrator
	Images      newsdesk.ImageStore

	// ImageOptions are passed to the Illustrator. Zero values select
	// newsdesk.DefaultAspectRatio and newsdesk.DefaultSampleCount.
	ImageOptions newsdesk.ImageOptions

	// Logger receives non-fatal failures. Nil discards them.
	Logger *slog.Logger

	// NewID returns story IDs. Defaults to random UUIDs.
	NewID func() string
}

// FromURL fetches the article at rawURL, extracts it and rewrites it into a
// new story. A failed illustration leaves the image fields nil.
func (e *Editor) FromURL(ctx context.Context, rawURL string) (*newsdesk.Story, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, newsdesk.Errorf(newsdesk.EINVALID, "link is required")
	}
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	html, err := e.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	article, err := e.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	prompt, err := GeneratePrompt(article.Title, article.Body)
	if err != nil {
		return nil, err
	}
	return e.compose(ctx, prompt)
}

// FromText proofreads text into a story. HTML input is sanitized and
// converted to Markdown first.
func (e *Editor) FromText(ctx context.Context, text string) (*newsdesk.Story, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newsdesk.Errorf(newsdesk.EINVALID, "text is required")
	}

	if newsdesk.LooksLikeHTML(text) && e.Converter != nil {
		clean := text
		if e.Sanitizer != nil {
			clean = e.Sanitizer.Sanitize(text)
		}
		md, err := e.Converter.Convert(clean)
		if err != nil {
			return nil, err
		}
		text = md
	}

	prompt, err := CorrectPrompt(text)
	if err != nil {
		return nil, err
	}
	return e.compose(ctx, prompt)
}

// Illustrate generates an image for prompt and stores it. Unlike the story
// pipelines, failures are returned to the caller.
func (e *Editor) Illustrate(ctx context.Context, prompt, hint string) (*newsdesk.Illustration, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, newsdesk.Errorf(newsdesk.EINVALID, "image prompt is required")
	}
	if e.Illustrator == nil || e.Images == nil {
		return nil, newsdesk.Errorf(newsdesk.EINTERNAL, "image generation is not configured")
	}

	img, err := e.Illustrator.Illustrate(ctx, prompt, e.ImageOptions)
	if err != nil {
		return nil, err
	}

	dataURL := img.DataURL()
	stored, err := e.Images.SaveImage(ctx, dataURL, hint)
	if err != nil {
		return nil, err
	}
	return &newsdesk.Illustration{URL: stored.URL, DataURL: dataURL}, nil
}

// compose runs the rewrite, parses the reply and attaches an illustration.
func (e *Editor) compose(ctx context.Context, prompt string) (*newsdesk.Story, error) {
	reply, err := e.Rewriter.Rewrite(ctx, prompt)
	if err != nil {
		return nil, err
	}

	story := newsdesk.NewStory(e.newID(), newsdesk.ParseSections(reply))
	e.illustrate(ctx, story)
	return story, nil
}

// illustrate fills the story image fields. Errors are logged, never
// returned. The data URL is kept even when storing the file fails.
func (e *Editor) illustrate(ctx context.Context, story *newsdesk.Story) {
	if e.Illustrator == nil {
		return
	}
	log := e.logger().With("story_id", story.ID)

	if story.ImagePrompt == "" {
		log.Warn("skipping illustration", "reason", "reply has no image prompt")
		return
	}

	img, err := e.Illustrator.Illustrate(ctx, story.ImagePrompt, e.ImageOptions)
	if err != nil {
		log.Error("illustration failed", "err", err)
		return
	}
	dataURL := img.DataURL()
	story.ImageBase64 = &dataURL

	if e.Images == nil {
		return
	}
	stored, err := e.Images.SaveImage(ctx, dataURL, story.Title)
	if err != nil {
		log.Error("storing illustration failed", "err", err)
		return
	}
	story.ImageURL = &stored.URL
}

func (e *Editor) newID() string {
	if e.NewID != nil {
		return e.NewID()
	}
	return uuid.NewString()
}

func (e *Editor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// validateURL accepts absolute http and https URLs only.
func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return newsdesk.Errorf(newsdesk.EINVALID, "invalid link %q: must be an absolute http(s) URL", rawURL)
	}
	return nil
}
