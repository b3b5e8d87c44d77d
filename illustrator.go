package newsdesk

import "context"

// Default generation parameters for article illustrations.
const (
	DefaultAspectRatio = "4:3"
	DefaultSampleCount = 1
)

// ImageOptions controls image generation.
type ImageOptions struct {
	AspectRatio string
	SampleCount int
}

// Image is a generated picture, base64-encoded.
type Image struct {
	Base64   string
	MIMEType string
}

// DataURL returns the image as a data: URL.
func (img *Image) DataURL() string {
	mime := img.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + img.Base64
}

// Illustrator generates images from text prompts.
type Illustrator interface {
	// Illustrate returns the first image generated for prompt.
	// Returns EUPSTREAM when the service fails or returns no image.
	Illustrate(ctx context.Context, prompt string, opts ImageOptions) (*Image, error)
}

// StoredImage describes an image persisted by an ImageStore.
type StoredImage struct {
	Name string
	Path string
	URL  string
}

// ImageStore persists generated images and makes them servable.
type ImageStore interface {
	// SaveImage decodes a base64 payload (optionally a data: URL) and stores it
	// under a name derived from hint.
	SaveImage(ctx context.Context, payload string, hint string) (*StoredImage, error)
}
