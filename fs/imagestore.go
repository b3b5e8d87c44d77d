// Package fs stores generated images on the local filesystem.
package fs

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/newsdesk"
)

// maxSlugLength bounds the slug part of image file names, in runes.
const maxSlugLength = 50

// defaultSlug is used when the hint yields an empty slug.
const defaultSlug = "imagem"

// URLPrefix is the path under which stored images are served.
const URLPrefix = "/imagens/"

// Ensure ImageStore implements newsdesk.ImageStore at compile time.
var _ newsdesk.ImageStore = (*ImageStore)(nil)

// ImageStore writes decoded images into a single directory and returns
// their public URL.
type ImageStore struct {
	dir     string
	baseURL string
	now     func() time.Time
}

// Option configures an ImageStore.
type Option func(*ImageStore)

// WithClock sets the time source used for file name prefixes.
func WithClock(now func() time.Time) Option {
	return func(s *ImageStore) {
		s.now = now
	}
}

// NewImageStore creates an ImageStore writing to dir. Public URLs are
// baseURL + URLPrefix + name.
func NewImageStore(dir, baseURL string, opts ...Option) *ImageStore {
	s := &ImageStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the directory images are written to.
func (s *ImageStore) Dir() string {
	return s.dir
}

// SaveImage decodes payload and writes it as <unix-millis>-<slug>.<ext>.
// payload may carry a data:image/<type>;base64, prefix, which selects the
// extension.
func (s *ImageStore) SaveImage(ctx context.Context, payload string, hint string) (*newsdesk.StoredImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mime, data := SplitDataURL(payload)
	if data == "" {
		return nil, newsdesk.Errorf(newsdesk.EINVALID, "empty image payload")
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, newsdesk.Errorf(newsdesk.EINVALID, "invalid base64 image payload: %v", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("creating image directory: %w", err)
	}

	name := FileName(s.now(), hint, Extension(mime))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return nil, fmt.Errorf("writing image %s: %w", name, err)
	}

	return &newsdesk.StoredImage{
		Name: name,
		Path: path,
		URL:  s.baseURL + URLPrefix + name,
	}, nil
}

// SplitDataURL separates a data:<mime>;base64, prefix from its payload.
// Input without the prefix is returned unchanged with an empty MIME type.
func SplitDataURL(payload string) (mime, data string) {
	payload = strings.TrimSpace(payload)
	if !strings.HasPrefix(payload, "data:") {
		return "", payload
	}
	header, data, ok := strings.Cut(payload, ",")
	if !ok {
		return "", payload
	}
	header = strings.TrimPrefix(header, "data:")
	mime, _, _ = strings.Cut(header, ";")
	return mime, data
}

// Extension maps an image MIME type to a file extension, defaulting to jpg.
func Extension(mime string) string {
	switch strings.ToLower(mime) {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	default:
		return "jpg"
	}
}

// FileName builds the stored file name for an image.
func FileName(at time.Time, hint, ext string) string {
	slug := newsdesk.Slugify(hint)
	if r := []rune(slug); len(r) > maxSlugLength {
		slug = string(r[:maxSlugLength])
	}
	if slug == "" {
		slug = defaultSlug
	}
	return fmt.Sprintf("%d-%s.%s", at.UnixMilli(), slug, ext)
}
