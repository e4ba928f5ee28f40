package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"barkbook/internal/config"
	"barkbook/internal/models"
	"barkbook/internal/observability"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	DefaultAvatarDir             = "/tmp/barkbook/uploads/avatars"
	DefaultAvatarMaxUploadSizeMB = 5
	AvatarMaxSize                = 512
	AvatarJPEGQuality            = 85
	AvatarWebPQuality            = 75
)

// StoredAvatar describes an avatar written to the asset store. URL is the
// public path the asset is served from; Handle is the opaque key needed to
// delete the asset later.
type StoredAvatar struct {
	URL    string
	Handle string
}

// AvatarService stores dog avatars as content-addressed assets on disk.
// Each upload is decoded, downscaled, and written under a hash directory as
// master.jpg plus a master.webp companion for clients that accept it.
type AvatarService struct {
	dir                string
	maxUploadSizeBytes int64
}

func NewAvatarService(cfg *config.Config) *AvatarService {
	dir := DefaultAvatarDir
	maxUploadSizeMB := DefaultAvatarMaxUploadSizeMB

	if cfg != nil {
		if cfg.AvatarDir != "" {
			dir = cfg.AvatarDir
		}
		if cfg.AvatarMaxUploadSizeMB > 0 {
			maxUploadSizeMB = cfg.AvatarMaxUploadSizeMB
		}
	}

	return &AvatarService{
		dir:                dir,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// Dir returns the root directory assets are stored under.
func (s *AvatarService) Dir() string {
	return s.dir
}

// Store validates, normalizes, and persists avatar image bytes. The hash is
// derived from the owner and the encoded master, so re-uploading identical
// content is idempotent.
func (s *AvatarService) Store(ownerID uint, content []byte) (*StoredAvatar, error) {
	if ownerID == 0 {
		return nil, models.NewValidationError("Invalid owner")
	}
	if len(content) == 0 {
		return nil, models.NewValidationError("No file uploaded")
	}
	if int64(len(content)) > s.maxUploadSizeBytes {
		observability.AvatarUploads.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	if !isAllowedAvatarMIME(http.DetectContentType(content)) {
		observability.AvatarUploads.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError("Invalid image type")
	}

	decoded, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		observability.AvatarUploads.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError("Invalid image file")
	}

	master := scaleToFit(decoded, AvatarMaxSize, AvatarMaxSize)

	encodedJPG, err := encodeAvatarJPEG(master)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	encodedWebP, err := encodeAvatarWebP(master)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	hash := avatarContentHash(ownerID, encodedJPG)
	jpgPath := filepath.Join(s.dir, hash, "master.jpg")
	webpPath := filepath.Join(s.dir, hash, "master.webp")

	if err := writeAssetFile(jpgPath, encodedJPG); err != nil {
		observability.AvatarUploads.WithLabelValues("error").Inc()
		return nil, models.NewInternalError(err)
	}
	if err := writeAssetFile(webpPath, encodedWebP); err != nil {
		_ = os.Remove(jpgPath)
		observability.AvatarUploads.WithLabelValues("error").Inc()
		return nil, models.NewInternalError(err)
	}

	observability.AvatarUploads.WithLabelValues("stored").Inc()
	return &StoredAvatar{
		URL:    fmt.Sprintf("/media/a/%s/master.jpg", hash),
		Handle: hash,
	}, nil
}

// Delete removes a stored avatar by its handle. Unknown handles are a no-op
// so callers can delete best-effort after replacing an avatar.
func (s *AvatarService) Delete(handle string) error {
	if handle == "" {
		return nil
	}
	if !isValidAvatarHandle(handle) {
		return models.NewValidationError("Invalid avatar handle")
	}
	if err := os.RemoveAll(filepath.Join(s.dir, handle)); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// isValidAvatarHandle checks that the handle is strictly lowercase hex
// (SHA-256 style). This prevents path traversal via crafted handles.
func isValidAvatarHandle(handle string) bool {
	if len(handle) == 0 || len(handle) > 128 {
		return false
	}
	for _, c := range handle {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func isAllowedAvatarMIME(contentType string) bool {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

func scaleToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodeAvatarJPEG(img image.Image) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: AvatarJPEGQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeAvatarWebP(img image.Image) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: AvatarWebPQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func avatarContentHash(ownerID uint, content []byte) string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%d:", ownerID)
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

func writeAssetFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
