package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

const (
	ThumbnailSize    = 300
	thumbnailQuality = 85
)

type ImageProcessor struct {
	MaxSize int64 // bytes
	MinEdge int   // > 0: cover phải vuông và cạnh >= MinEdge (DSP thường yêu cầu 1400)
}

func NewImageProcessor(maxSize int64, minEdge int) *ImageProcessor {
	return &ImageProcessor{MaxSize: maxSize, MinEdge: minEdge}
}

// ValidateCover: chỉ nhận JPEG/PNG
func (p *ImageProcessor) ValidateCover(data []byte) error {
	if p.MaxSize > 0 && int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	if format != "jpeg" && format != "png" {
		return fmt.Errorf("image format %s not allowed (only jpeg/png)", format)
	}
	if p.MinEdge <= 0 {
		return nil
	}
	if cfg.Width != cfg.Height {
		return fmt.Errorf("cover art must be square, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Width < p.MinEdge {
		return fmt.Errorf("cover art must be at least %dx%d", p.MinEdge, p.MinEdge)
	}
	return nil
}

// Thumbnail resize về ThumbnailSize và encode JPEG
func (p *ImageProcessor) Thumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}
	thumb := imaging.Fit(img, ThumbnailSize, ThumbnailSize, imaging.Lanczos)

	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, thumb, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return nil, fmt.Errorf("cannot encode thumbnail: %w", err)
	}
	return b.Bytes(), nil
}
