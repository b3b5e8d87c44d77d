package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestIllustrator_Illustrate_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	il := gemini.NewIllustrator(nil)

	_, err := il.Illustrate(context.Background(), "", newsdesk.ImageOptions{})

	require.Error(t, err)
	assert.Equal(t, newsdesk.EINVALID, newsdesk.ErrorCode(err))
}

func TestBuildImagesConfig(t *testing.T) {
	t.Parallel()

	t.Run("fills defaults", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildImagesConfig(newsdesk.ImageOptions{})

		assert.Equal(t, "4:3", config.AspectRatio)
		assert.Equal(t, int32(1), config.NumberOfImages)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildImagesConfig(newsdesk.ImageOptions{AspectRatio: "16:9", SampleCount: 2})

		assert.Equal(t, "16:9", config.AspectRatio)
		assert.Equal(t, int32(2), config.NumberOfImages)
	})
}

func TestImageFromResponse(t *testing.T) {
	t.Parallel()

	t.Run("encodes first image", func(t *testing.T) {
		t.Parallel()

		resp := &genai.GenerateImagesResponse{
			GeneratedImages: []*genai.GeneratedImage{
				{Image: &genai.Image{ImageBytes: []byte("abc"), MIMEType: "image/png"}},
				{Image: &genai.Image{ImageBytes: []byte("zzz")}},
			},
		}

		img, err := gemini.ImageFromResponse(resp)

		require.NoError(t, err)
		assert.Equal(t, "YWJj", img.Base64)
		assert.Equal(t, "image/png", img.MIMEType)
		assert.Equal(t, "data:image/png;base64,YWJj", img.DataURL())
	})

	t.Run("defaults MIME type to jpeg", func(t *testing.T) {
		t.Parallel()

		resp := &genai.GenerateImagesResponse{
			GeneratedImages: []*genai.GeneratedImage{{Image: &genai.Image{ImageBytes: []byte("abc")}}},
		}

		img, err := gemini.ImageFromResponse(resp)

		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", img.MIMEType)
	})

	t.Run("fails without predictions", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ImageFromResponse(&genai.GenerateImagesResponse{})

		require.Error(t, err)
		assert.Equal(t, newsdesk.EUPSTREAM, newsdesk.ErrorCode(err))
		assert.Equal(t, "imagen", newsdesk.UpstreamOf(err).Service)
	})

	t.Run("fails without image bytes and reports filter reason", func(t *testing.T) {
		t.Parallel()

		resp := &genai.GenerateImagesResponse{
			GeneratedImages: []*genai.GeneratedImage{{RAIFilteredReason: "blocked by safety filter"}},
		}

		_, err := gemini.ImageFromResponse(resp)

		require.Error(t, err)
		assert.Equal(t, newsdesk.EUPSTREAM, newsdesk.ErrorCode(err))
		assert.Equal(t, "blocked by safety filter", newsdesk.UpstreamOf(err).Body)
	})

	t.Run("fails on nil response", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ImageFromResponse(nil)

		assert.Equal(t, newsdesk.EUPSTREAM, newsdesk.ErrorCode(err))
	})
}
