package fs_test

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.UnixMilli(1700000000123)

func newStore(t *testing.T) *fs.ImageStore {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "public", "imagens")
	return fs.NewImageStore(dir, "http://localhost:3000/", fs.WithClock(func() time.Time { return fixedTime }))
}

func TestImageStore_SaveImage(t *testing.T) {
	t.Parallel()

	pixels := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	encoded := base64.StdEncoding.EncodeToString(pixels)

	t.Run("writes decoded bytes and returns public URL", func(t *testing.T) {
		t.Parallel()

		store := newStore(t)

		img, err := store.SaveImage(context.Background(), encoded, "Enchente em São Paulo")

		require.NoError(t, err)
		assert.Equal(t, "1700000000123-enchente-em-sao-paulo.jpg", img.Name)
		assert.Equal(t, "http://localhost:3000/imagens/1700000000123-enchente-em-sao-paulo.jpg", img.URL)
		assert.Equal(t, filepath.Join(store.Dir(), img.Name), img.Path)

		got, err := os.ReadFile(img.Path)
		require.NoError(t, err)
		assert.Equal(t, pixels, got)
	})

	t.Run("creates the directory on demand", func(t *testing.T) {
		t.Parallel()

		store := newStore(t)
		_, err := os.Stat(store.Dir())
		require.True(t, os.IsNotExist(err))

		_, err = store.SaveImage(context.Background(), encoded, "x")

		require.NoError(t, err)
		info, err := os.Stat(store.Dir())
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("strips data URL prefix and keeps png extension", func(t *testing.T) {
		t.Parallel()

		store := newStore(t)

		img, err := store.SaveImage(context.Background(), "data:image/png;base64,"+encoded, "mapa")

		require.NoError(t, err)
		assert.Equal(t, "1700000000123-mapa.png", img.Name)
		got, err := os.ReadFile(img.Path)
		require.NoError(t, err)
		assert.Equal(t, pixels, got)
	})

	t.Run("empty hint falls back to default slug", func(t *testing.T) {
		t.Parallel()

		img, err := newStore(t).SaveImage(context.Background(), encoded, "")

		require.NoError(t, err)
		assert.Equal(t, "1700000000123-imagem.jpg", img.Name)
	})

	t.Run("truncates long slugs", func(t *testing.T) {
		t.Parallel()

		img, err := newStore(t).SaveImage(context.Background(), encoded, strings.Repeat("a", 80))

		require.NoError(t, err)
		assert.Equal(t, "1700000000123-"+strings.Repeat("a", 50)+".jpg", img.Name)
	})

	t.Run("rejects invalid base64", func(t *testing.T) {
		t.Parallel()

		_, err := newStore(t).SaveImage(context.Background(), "não é base64!", "x")

		require.Error(t, err)
		assert.Equal(t, newsdesk.EINVALID, newsdesk.ErrorCode(err))
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		t.Parallel()

		_, err := newStore(t).SaveImage(context.Background(), "data:image/png;base64,", "x")

		require.Error(t, err)
		assert.Equal(t, newsdesk.EINVALID, newsdesk.ErrorCode(err))
	})

	t.Run("fails when the directory cannot be created", func(t *testing.T) {
		t.Parallel()

		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))
		store := fs.NewImageStore(filepath.Join(blocker, "imagens"), "http://localhost:3000")

		_, err := store.SaveImage(context.Background(), encoded, "x")

		require.Error(t, err)
		assert.Equal(t, newsdesk.EINTERNAL, newsdesk.ErrorCode(err))
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newStore(t).SaveImage(ctx, encoded, "x")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSplitDataURL(t *testing.T) {
	t.Parallel()

	mime, data := fs.SplitDataURL("data:image/webp;base64,QUJD")
	assert.Equal(t, "image/webp", mime)
	assert.Equal(t, "QUJD", data)

	mime, data = fs.SplitDataURL("QUJD")
	assert.Empty(t, mime)
	assert.Equal(t, "QUJD", data)
}

func TestExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jpg", fs.Extension("image/jpeg"))
	assert.Equal(t, "png", fs.Extension("image/png"))
	assert.Equal(t, "webp", fs.Extension("image/webp"))
	assert.Equal(t, "jpg", fs.Extension(""))
}
