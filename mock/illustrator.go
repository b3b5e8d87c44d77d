package mock

import (
	"context"

	"github.com/fwojciec/newsdesk"
)

var _ newsdesk.Illustrator = (*Illustrator)(nil)

// Illustrator is a mock implementation of newsdesk.Illustrator.
type Illustrator struct {
	IllustrateFn func(ctx context.Context, prompt string, opts newsdesk.ImageOptions) (*newsdesk.Image, error)
}

func (i *Illustrator) Illustrate(ctx context.Context, prompt string, opts newsdesk.ImageOptions) (*newsdesk.Image, error) {
	return i.IllustrateFn(ctx, prompt, opts)
}

var _ newsdesk.ImageStore = (*ImageStore)(nil)

// ImageStore is a mock implementation of newsdesk.ImageStore.
type ImageStore struct {
	SaveImageFn func(ctx context.Context, payload string, hint string) (*newsdesk.StoredImage, error)
}

func (s *ImageStore) SaveImage(ctx context.Context, payload string, hint string) (*newsdesk.StoredImage, error) {
	return s.SaveImageFn(ctx, payload, hint)
}
