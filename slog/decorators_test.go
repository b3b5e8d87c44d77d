package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/mock"
	ndslog "github.com/fwojciec/newsdesk/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs title, size and content hash", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(string) (*newsdesk.Extraction, error) {
				return &newsdesk.Extraction{Title: "Manchete", Body: "corpo"}, nil
			},
		}

		result, err := ndslog.NewLoggingExtractor(inner, logger).Extract("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "corpo", result.Body)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "html_bytes=13")
		assert.Contains(t, output, "title=Manchete")
		assert.Contains(t, output, "body_bytes=5")
		assert.Contains(t, output, "content_hash="+ndslog.ContentHash("corpo"))
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(string) (*newsdesk.Extraction, error) {
				return nil, errors.New("no content")
			},
		}

		_, err := ndslog.NewLoggingExtractor(inner, logger).Extract("<html></html>")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="no content"`)
		assert.NotContains(t, buf.String(), "content_hash")
	})
}

func TestContentHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ndslog.ContentHash("a"), ndslog.ContentHash("a"))
	assert.NotEqual(t, ndslog.ContentHash("a"), ndslog.ContentHash("b"))
	assert.Equal(t, "ef46db3751d8e999", ndslog.ContentHash(""))
}

func TestLoggingRewriter_Rewrite(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes without text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Rewriter{
			RewriteFn: func(context.Context, string) (string, error) {
				return "TÍTULO: segredo", nil
			},
		}

		reply, err := ndslog.NewLoggingRewriter(inner, logger).Rewrite(context.Background(), "prompt secreto")

		require.NoError(t, err)
		assert.Equal(t, "TÍTULO: segredo", reply)
		output := buf.String()
		assert.Contains(t, output, "msg=rewrite")
		assert.Contains(t, output, "prompt_bytes=14")
		assert.NotContains(t, output, "secreto")
	})

	t.Run("logs upstream status", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Rewriter{
			RewriteFn: func(context.Context, string) (string, error) {
				return "", newsdesk.UpstreamErrorf(newsdesk.Upstream{Service: "deepseek", Status: 401}, "denied")
			},
		}

		_, err := ndslog.NewLoggingRewriter(inner, logger).Rewrite(context.Background(), "p")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "upstream=deepseek")
		assert.Contains(t, buf.String(), "status=401")
	})
}

func TestLoggingIllustrator_Illustrate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Illustrator{
		IllustrateFn: func(context.Context, string, newsdesk.ImageOptions) (*newsdesk.Image, error) {
			return &newsdesk.Image{Base64: "QUJD", MIMEType: "image/png"}, nil
		},
	}

	img, err := ndslog.NewLoggingIllustrator(inner, logger).
		Illustrate(context.Background(), "bridge", newsdesk.ImageOptions{AspectRatio: "4:3"})

	require.NoError(t, err)
	assert.Equal(t, "QUJD", img.Base64)
	output := buf.String()
	assert.Contains(t, output, "msg=illustrate")
	assert.Contains(t, output, "prompt=bridge")
	assert.Contains(t, output, "aspect_ratio=4:3")
	assert.Contains(t, output, "mime_type=image/png")
	assert.Contains(t, output, "base64_bytes=4")
}

func TestLoggingImageStore_SaveImage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ImageStore{
		SaveImageFn: func(context.Context, string, string) (*newsdesk.StoredImage, error) {
			return &newsdesk.StoredImage{Path: "/tmp/1-a.jpg", URL: "http://x/imagens/1-a.jpg"}, nil
		},
	}

	_, err := ndslog.NewLoggingImageStore(inner, logger).SaveImage(context.Background(), "QUJD", "a")

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, `msg="save image"`)
	assert.Contains(t, output, "payload_bytes=4")
	assert.Contains(t, output, "url=http://x/imagens/1-a.jpg")
}
