// Package compress receives uploads, dispatches them to the matching
// converter, and manages the file lifecycle around transient storage: the
// input artifact is deleted once its conversion finishes, whatever the
// outcome.
package compress

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/filepress/service/internal/converter"
	"github.com/filepress/service/internal/storage"
	"github.com/filepress/service/internal/worker"
)

// processedPrefix is prepended to the stored input name to derive the
// processed artifact's name, which doubles as the download reference.
const processedPrefix = "compressed-"

// Service coordinates one conversion per request: incoming file in,
// processed artifact out, input deleted either way.
type Service struct {
	incoming       *storage.Area
	processed      *storage.Area
	pool           *worker.Pool
	converters     map[converter.Kind]converter.Converter
	maxUploadBytes int64
}

// NewService creates a compression Service.
func NewService(incoming, processed *storage.Area, pool *worker.Pool, converters map[converter.Kind]converter.Converter, maxUploadMB int64) *Service {
	return &Service{
		incoming:       incoming,
		processed:      processed,
		pool:           pool,
		converters:     converters,
		maxUploadBytes: maxUploadMB << 20,
	}
}

// Result describes a finished conversion. DownloadName is the reference
// the client presents to the download endpoint.
type Result struct {
	DownloadName   string
	OriginalSize   int64
	CompressedSize int64
	Savings        int
}

// Process runs the converter for kind against the uploaded file and
// returns size metrics. The conversion is synchronous relative to the
// request; the input artifact no longer exists in the incoming area after
// either outcome.
func (s *Service) Process(ctx context.Context, kind converter.Kind, quality string, up *UploadedFile) (*Result, error) {
	conv, ok := s.converters[kind]
	if !ok {
		s.removeInput(up)
		return nil, fmt.Errorf("no converter registered for kind %q", kind)
	}

	outputName := processedPrefix + up.StoredName
	outputPath := s.processed.Resolve(outputName)

	err := s.pool.Submit(ctx, func(ctx context.Context) error {
		return conv.Convert(ctx, up.StoredPath, outputPath, quality)
	})
	if err != nil {
		s.removeInput(up)
		// Converters clean up after themselves, but a cancelled submit can
		// still leave a partial output behind.
		_ = s.processed.RemoveIfExists(outputName)
		return nil, err
	}

	originalSize, err := s.incoming.Size(up.StoredName)
	if err != nil {
		s.removeInput(up)
		_ = s.processed.RemoveIfExists(outputName)
		return nil, fmt.Errorf("stat original: %w", err)
	}
	compressedSize, err := s.processed.Size(outputName)
	if err != nil {
		s.removeInput(up)
		return nil, fmt.Errorf("stat compressed: %w", err)
	}

	s.removeInput(up)

	return &Result{
		DownloadName:   outputName,
		OriginalSize:   originalSize,
		CompressedSize: compressedSize,
		Savings:        SavingsPercent(originalSize, compressedSize),
	}, nil
}

// removeInput deletes the uploaded file from the incoming area. The
// dispatcher is the input's only deletion owner.
func (s *Service) removeInput(up *UploadedFile) {
	if err := s.incoming.RemoveIfExists(up.StoredName); err != nil {
		log.Printf("compress: remove input %q: %v", up.StoredName, err)
	}
}

// SavingsPercent computes round((1 - compressed/original) * 100). The
// result is negative when compression inflates the file; that is
// surfaced, not clamped.
func SavingsPercent(originalSize, compressedSize int64) int {
	if originalSize == 0 {
		return 0
	}
	return int(math.Round((1 - float64(compressedSize)/float64(originalSize)) * 100))
}
