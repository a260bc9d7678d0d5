// Package renamer runs the extract, match and rename pipeline over a batch
// of uploaded invoices.
package renamer

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"invoice-renamer/internal/archive"
	"invoice-renamer/internal/extract"
	"invoice-renamer/internal/rename"
	"invoice-renamer/internal/shared/metrics"
	"invoice-renamer/internal/shared/telemetry"
)

// extractParallelism bounds concurrent PDF parsing within one batch.
const extractParallelism = 4

// Upload is one file received from the client.
type Upload struct {
	OriginalName string
	Data         []byte
}

// Service orchestrates extraction and renaming for one request.
type Service struct {
	extractText func(ctx context.Context, data []byte) (string, error)
}

// NewService constructs a Service backed by the PDF extractor.
func NewService() *Service {
	return &Service{extractText: extract.Text}
}

// Rename produces the renamed (name, bytes) pairs for a batch. Files are
// extracted in parallel but results keep upload order. A file that fails
// extraction keeps its original name; one bad file never aborts the batch.
func (s *Service) Rename(ctx context.Context, scheme rename.Scheme, uploads []Upload) []archive.File {
	started := time.Now()
	files := make([]archive.File, len(uploads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(extractParallelism)
	for i, up := range uploads {
		i, up := i, up
		g.Go(func() error {
			text, err := s.extractText(gctx, up.Data)
			if err != nil {
				metrics.IncExtractFailure()
				telemetry.Error("rename.extract_failed", map[string]any{
					"scheme": scheme.Name(),
					"file":   up.OriginalName,
					"err":    err.Error(),
				})
				files[i] = archive.File{Name: up.OriginalName, Data: up.Data}
				return nil
			}
			files[i] = archive.File{Name: scheme.BuildName(text, up.OriginalName), Data: up.Data}
			return nil
		})
	}
	_ = g.Wait()

	metrics.IncBatch()
	metrics.AddFiles(len(uploads))
	metrics.ObserveBatchDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)

	telemetry.Info("rename.batch_complete", map[string]any{
		"scheme":      scheme.Name(),
		"file_count":  len(uploads),
		"duration_ms": float64(time.Since(started).Microseconds()) / 1000.0,
	})
	return files
}
