package converter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPDFConvertRejectsBrokenDocument(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.pdf")
	output := filepath.Join(dir, "out.pdf")
	if err := os.WriteFile(input, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewPDFConverter()
	err := c.Convert(context.Background(), input, output, "")
	if !errors.Is(err, ErrConversionFailed) {
		t.Errorf("Convert on broken pdf = %v, want ErrConversionFailed", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("failed conversion left an output file")
	}
}

func TestPDFConvertCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewPDFConverter()
	err := c.Convert(ctx, "in.pdf", "out.pdf", "")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert with cancelled context = %v, want context.Canceled", err)
	}
}
