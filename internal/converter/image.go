package converter

import (
	"context"
	"image"
	_ "image/gif" // register decoders for the formats clients upload
	"image/jpeg"
	_ "image/png"
	"os"
	"strconv"

	"github.com/nfnt/resize"
)

const defaultImageQuality = 80

// ImageConverter re-encodes an image as JPEG at the requested quality.
// The output is always a lossy JPEG regardless of the input format. Low
// quality values additionally downscale large images, since dimension
// reduction is where most of the byte savings come from.
type ImageConverter struct{}

// NewImageConverter creates a new ImageConverter.
func NewImageConverter() *ImageConverter {
	return &ImageConverter{}
}

// Convert decodes the image at inputPath and writes a JPEG rendition to
// outputPath. quality is an integer 1-100; absent defaults to 80,
// out-of-range values are clamped.
func (c *ImageConverter) Convert(ctx context.Context, inputPath, outputPath, quality string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	q, err := parseImageQuality(quality)
	if err != nil {
		return err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return failf("open image: %v", err)
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return failf("decode image: %v", err)
	}

	img = downscale(img, q)

	// Encode to a temp file first so a failed encode never leaves a
	// half-written artifact under the final name.
	tmpPath := outputPath + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return failf("create output: %v", err)
	}
	err = jpeg.Encode(out, img, &jpeg.Options{Quality: q})
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return failf("encode jpeg: %v", err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		_ = os.Remove(tmpPath)
		return failf("finalize output: %v", err)
	}
	return nil
}

func parseImageQuality(quality string) (int, error) {
	if quality == "" {
		return defaultImageQuality, nil
	}
	q, err := strconv.Atoi(quality)
	if err != nil {
		return 0, failf("invalid image quality %q", quality)
	}
	if q < 1 {
		q = 1
	}
	if q > 100 {
		q = 100
	}
	return q, nil
}

// downscale shrinks large images proportionally to the quality setting.
// Small images and high quality settings pass through untouched.
func downscale(img image.Image, quality int) image.Image {
	scale := 0.5 + float64(quality)/100*0.5
	if scale >= 1.0 {
		return img
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 400 || height <= 400 {
		return img
	}
	newWidth := uint(float64(width) * scale)
	newHeight := uint(float64(height) * scale)
	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}
