package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// ImageService provides image processing operations for cover art.
//
// ImageService resizes downloaded artwork before it is embedded, so
// one oversized scan does not get copied into every file of a release.
//
// Example usage:
//
//	svc := NewImageService()
//
//	// Bound the longest edge at 500px, keeping the source format
//	resized, mime, err := svc.ResizeToBound(ctx, imageData, 500)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// ResizeToBound scales an image so its longest edge is at most
// maxEdge pixels, preserving the aspect ratio, and re-encodes it in
// its source format.
//
// Images already within the bound are re-encoded without scaling.
// PNG input stays PNG; everything else is encoded as JPEG at quality
// 90. The returned MIME type matches the encoding used.
//
// The Catmull-Rom algorithm is used for high-quality scaling.
//
// Example:
//
//	resized, mime, err := svc.ResizeToBound(ctx, data, 500)
//	// A 1500x1000 image becomes 500x333
//	// A 300x300 image keeps its dimensions
func (s *ImageService) ResizeToBound(ctx context.Context, data []byte, maxEdge int) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode cover image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Scale down only; small images keep their dimensions
	if width > maxEdge || height > maxEdge {
		if width >= height {
			height = height * maxEdge / width
			width = maxEdge
		} else {
			width = width * maxEdge / height
			height = maxEdge
		}
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encode cover image: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	}

	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, "", fmt.Errorf("encode cover image: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}
