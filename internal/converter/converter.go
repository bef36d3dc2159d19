// Package converter defines the capability shared by the three media
// converters and its PDF, image, and video implementations. Each variant
// consumes an input path and a quality parameter and writes its result to
// the given output path, or fails without leaving a partial output behind.
package converter

import (
	"context"
	"errors"
	"fmt"
)

// Converter turns the file at inputPath into a compressed rendition at
// outputPath. quality is the raw route parameter; its semantics differ
// per variant. Implementations must block until the output is fully
// written and must not leave a partial output on failure.
type Converter interface {
	Convert(ctx context.Context, inputPath, outputPath, quality string) error
}

// Kind identifies a converter variant.
type Kind string

// Converter variants.
const (
	KindPDF   Kind = "pdf"
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// ErrConversionFailed wraps any failure from an underlying engine.
var ErrConversionFailed = errors.New("conversion failed")

func failf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConversionFailed, fmt.Sprintf(format, args...))
}
