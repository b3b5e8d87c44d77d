package gemini

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/fwojciec/newsdesk"
	"google.golang.org/genai"
)

// DefaultImageModel is the Imagen model used for illustrations.
const DefaultImageModel = "imagen-3.0-generate-002"

// Ensure Illustrator implements newsdesk.Illustrator at compile time.
var _ newsdesk.Illustrator = (*Illustrator)(nil)

// Illustrator implements newsdesk.Illustrator using Imagen.
type Illustrator struct {
	client *genai.Client
	model  string
}

// IllustratorOption configures an Illustrator.
type IllustratorOption func(*Illustrator)

// WithImageModel overrides DefaultImageModel.
func WithImageModel(model string) IllustratorOption {
	return func(il *Illustrator) {
		il.model = model
	}
}

// NewIllustrator creates a new Illustrator.
func NewIllustrator(client *genai.Client, opts ...IllustratorOption) *Illustrator {
	il := &Illustrator{client: client, model: DefaultImageModel}
	for _, opt := range opts {
		opt(il)
	}
	return il
}

// Illustrate generates an image for prompt and returns the first one.
func (il *Illustrator) Illustrate(ctx context.Context, prompt string, opts newsdesk.ImageOptions) (*newsdesk.Image, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, newsdesk.Errorf(newsdesk.EINVALID, "image prompt is required")
	}

	resp, err := il.client.Models.GenerateImages(ctx, il.model, prompt, BuildImagesConfig(opts))
	if err != nil {
		return nil, upstreamError(ctx, "imagen", "image request", err)
	}
	return ImageFromResponse(resp)
}

// BuildImagesConfig maps ImageOptions onto the SDK config, filling defaults.
func BuildImagesConfig(opts newsdesk.ImageOptions) *genai.GenerateImagesConfig {
	aspect := opts.AspectRatio
	if aspect == "" {
		aspect = newsdesk.DefaultAspectRatio
	}
	count := opts.SampleCount
	if count <= 0 {
		count = newsdesk.DefaultSampleCount
	}
	return &genai.GenerateImagesConfig{
		NumberOfImages: int32(count),
		AspectRatio:    aspect,
	}
}

// ImageFromResponse returns the first generated image in resp, base64
// encoded. A response without image bytes is an upstream failure.
func ImageFromResponse(resp *genai.GenerateImagesResponse) (*newsdesk.Image, error) {
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, newsdesk.UpstreamErrorf(newsdesk.Upstream{Service: "imagen"}, "no image returned")
	}

	generated := resp.GeneratedImages[0]
	if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
		up := newsdesk.Upstream{Service: "imagen"}
		if generated != nil && generated.RAIFilteredReason != "" {
			up.Body = generated.RAIFilteredReason
		}
		return nil, newsdesk.UpstreamErrorf(up, "no image data in response")
	}

	mime := generated.Image.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}
	return &newsdesk.Image{
		Base64:   base64.StdEncoding.EncodeToString(generated.Image.ImageBytes),
		MIMEType: mime,
	}, nil
}
