package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"barkbook/internal/config"
	"barkbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAvatarService(t *testing.T) *AvatarService {
	t.Helper()
	return NewAvatarService(&config.Config{
		AvatarDir:             t.TempDir(),
		AvatarMaxUploadSizeMB: 5,
	})
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	buf := bytes.NewBuffer(nil)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestAvatarStore(t *testing.T) {
	svc := testAvatarService(t)

	stored, err := svc.Store(1, testPNG(t, 64, 64))
	require.NoError(t, err)

	assert.Equal(t, "/media/a/"+stored.Handle+"/master.jpg", stored.URL)
	assert.True(t, isValidAvatarHandle(stored.Handle))

	_, err = os.Stat(filepath.Join(svc.Dir(), stored.Handle, "master.jpg"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(svc.Dir(), stored.Handle, "master.webp"))
	assert.NoError(t, err)
}

func TestAvatarStoreIsIdempotent(t *testing.T) {
	svc := testAvatarService(t)
	content := testPNG(t, 64, 64)

	first, err := svc.Store(1, content)
	require.NoError(t, err)
	second, err := svc.Store(1, content)
	require.NoError(t, err)

	assert.Equal(t, first.Handle, second.Handle)
	assert.Equal(t, first.URL, second.URL)
}

func TestAvatarStoreDifferentOwnersDifferentHandles(t *testing.T) {
	svc := testAvatarService(t)
	content := testPNG(t, 64, 64)

	a, err := svc.Store(1, content)
	require.NoError(t, err)
	b, err := svc.Store(2, content)
	require.NoError(t, err)

	assert.NotEqual(t, a.Handle, b.Handle)
}

func TestAvatarStoreDownscalesLargeImages(t *testing.T) {
	svc := testAvatarService(t)

	stored, err := svc.Store(1, testPNG(t, AvatarMaxSize*2, AvatarMaxSize))
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(svc.Dir(), stored.Handle, "master.jpg"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.LessOrEqual(t, cfg.Width, AvatarMaxSize)
	assert.LessOrEqual(t, cfg.Height, AvatarMaxSize)
}

func TestAvatarStoreRejectsInvalidInput(t *testing.T) {
	svc := testAvatarService(t)

	tests := []struct {
		name    string
		ownerID uint
		content []byte
	}{
		{name: "Empty upload", ownerID: 1, content: nil},
		{name: "Not an image", ownerID: 1, content: []byte("definitely not an image")},
		{name: "Zero owner", ownerID: 0, content: testPNG(t, 8, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Store(tt.ownerID, tt.content)
			require.Error(t, err)

			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.CodeValidation, appErr.Code)
		})
	}
}

func TestAvatarDelete(t *testing.T) {
	svc := testAvatarService(t)

	stored, err := svc.Store(1, testPNG(t, 32, 32))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(stored.Handle))
	_, err = os.Stat(filepath.Join(svc.Dir(), stored.Handle))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a no-op
	assert.NoError(t, svc.Delete(stored.Handle))
	// Empty handle is a no-op
	assert.NoError(t, svc.Delete(""))
}

func TestAvatarDeleteRejectsTraversal(t *testing.T) {
	svc := testAvatarService(t)

	for _, handle := range []string{"../etc", "a/../../b", "ABCDEF", "deadbeef!"} {
		err := svc.Delete(handle)
		require.Error(t, err, "handle %q", handle)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	}
}
