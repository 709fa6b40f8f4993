package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/Yalanday/test-selsup/logger"
	"github.com/Yalanday/test-selsup/models"
	"github.com/Yalanday/test-selsup/utils"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

var (
	// ErrRemoteImage is returned for image refs that are URLs; those are never fetched
	ErrRemoteImage = errors.New("image is remote")
	// ErrNoImage is returned when a product has no image ref
	ErrNoImage = errors.New("product has no image")
)

// ImageService serves product images from the static dir, resized and cached as JPEG
type ImageService struct {
	staticDir string
	cacheDir  string
	log       *zap.SugaredLogger
}

// Ensure ImageService implements ImageServiceInterface
var _ ImageServiceInterface = (*ImageService)(nil)

// NewImageService creates a new ImageService
func NewImageService(staticDir, cacheDir string, log *zap.SugaredLogger) *ImageService {
	return &ImageService{
		staticDir: staticDir,
		cacheDir:  cacheDir,
		log:       logger.OrNop(log),
	}
}

// EnsureCacheDir ensures the cache directory exists, creates it if it doesn't
func (s *ImageService) EnsureCacheDir() error {
	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// CachePath returns the cache file path for a given product and size
func (s *ImageService) CachePath(productID int, size string) string {
	filename := fmt.Sprintf("product_%d_%s.jpg", productID, size)
	return filepath.Join(s.cacheDir, filename)
}

// ProductImage returns the optimized JPEG for a product's local image, using the cache when possible
func (s *ImageService) ProductImage(product models.Product, size string) ([]byte, error) {
	size = normalizeImageSize(size)

	switch {
	case strings.TrimSpace(product.ImageRef) == "":
		return nil, ErrNoImage
	case utils.IsRemoteRef(product.ImageRef):
		return nil, ErrRemoteImage
	}

	cachePath := s.CachePath(product.ID, size)
	if data, err := os.ReadFile(cachePath); err == nil {
		s.log.Debugf("✓ Image cache hit: %s", cachePath)
		return data, nil
	}

	sourcePath, err := s.resolve(product.ImageRef)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	optimized, err := OptimizeImage(raw, size)
	if err != nil {
		return nil, err
	}

	if err := s.saveToCache(cachePath, optimized); err != nil {
		// Serving still works without the cache
		s.log.Warnf("⚠️  Warning: failed to cache image for product %d: %v", product.ID, err)
	}
	return optimized, nil
}

// resolve maps a local image ref to a path inside the static dir
func (s *ImageService) resolve(ref string) (string, error) {
	cleaned := filepath.Clean("/" + filepath.ToSlash(strings.TrimSpace(ref)))
	path := filepath.Join(s.staticDir, cleaned)

	rel, err := filepath.Rel(s.staticDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("image ref %q escapes static dir", ref)
	}
	return path, nil
}

func (s *ImageService) saveToCache(cachePath string, imageData []byte) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(cachePath, imageData, 0o644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	s.log.Debugf("✓ Image cached: %s", cachePath)
	return nil
}

func normalizeImageSize(size string) string {
	switch strings.ToLower(strings.TrimSpace(size)) {
	case "thumb":
		return "thumb"
	default:
		return "medium"
	}
}

// OptimizeImage decodes an image, fits it into the max dimension for size
// ("thumb" or "medium") keeping the aspect ratio, and encodes it as JPEG
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	maxDim, quality := maxSizeMedium, qualityMedium
	if normalizeImageSize(size) == "thumb" {
		maxDim, quality = maxSizeThumb, qualityThumb
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
