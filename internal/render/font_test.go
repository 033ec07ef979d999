package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/deskutils/internal/render/mock_render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func writeGoRegular(t *testing.T) (path string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "goregular.ttf")
	const perm = 0o600
	err := os.WriteFile(path, goregular.TTF, perm)
	require.NoError(t, err)
	return path
}

func Test_LoadFace(t *testing.T) {
	t.Parallel()

	t.Run("invalid size", func(t *testing.T) {
		t.Parallel()

		face, err := LoadFace("arial.ttf", 0)

		assert.ErrorIs(t, err, ErrFontSizeInvalid)
		assert.Nil(t, face)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.ttf")

		face, err := LoadFace(path, 16)

		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Nil(t, face)
	})

	t.Run("not a font", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "text.ttf")
		err := os.WriteFile(path, []byte("not a font"), 0o600)
		require.NoError(t, err)

		face, err := LoadFace(path, 16)

		assert.Error(t, err)
		assert.Nil(t, face)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		path := writeGoRegular(t)

		face, err := LoadFace(path, 16)

		require.NoError(t, err)
		assert.Positive(t, face.Metrics().Height.Ceil())
		assert.NoError(t, face.Close())
	})
}

func Test_FaceOrDefault(t *testing.T) {
	t.Parallel()

	t.Run("fallback", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		path := filepath.Join(t.TempDir(), "arial.ttf")
		infoer := mock_render.NewMockInfoer(ctrl)
		infoer.EXPECT().Info(gomock.AssignableToTypeOf("")).
			Do(func(s string) {
				assert.Contains(t, s, "using default font: reading font file: ")
			})

		face := FaceOrDefault(path, 16, infoer)

		assert.Equal(t, basicfont.Face7x13, face)
	})

	t.Run("loaded", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		path := writeGoRegular(t)
		infoer := mock_render.NewMockInfoer(ctrl)

		face := FaceOrDefault(path, 16, infoer)

		assert.NotEqual(t, basicfont.Face7x13, face)
	})
}
