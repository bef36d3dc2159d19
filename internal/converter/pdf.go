package converter

import (
	"context"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDFConverter rewrites a PDF through pdfcpu's optimizer. The document is
// parsed and re-serialized, which validates its structure and strips
// redundant objects; the quality parameter is accepted but has no effect
// on this variant.
type PDFConverter struct{}

// NewPDFConverter creates a new PDFConverter.
func NewPDFConverter() *PDFConverter {
	return &PDFConverter{}
}

// Convert optimizes the PDF at inputPath into outputPath.
func (c *PDFConverter) Convert(ctx context.Context, inputPath, outputPath, quality string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := api.OptimizeFile(inputPath, outputPath, nil); err != nil {
		_ = os.Remove(outputPath)
		return failf("optimize pdf: %v", err)
	}
	return nil
}
