package dataset

import (
	"context"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"eisview/adapters/mpt"
	"eisview/domain/eis"
	"eisview/internal"
	"eisview/internal/config"
	"eisview/internal/errors"
)

// Index is the immutable result of one startup ingest run. It is shared
// process-wide and never mutated after BuildIndex returns.
type Index struct {
	Cells       eis.CellIndex
	FailedFiles []string
	FilesFound  int
	FilesLoaded int

	// LargestIDCell is the name of the cell with the numerically largest
	// leading identifier, for the status surface. Cells whose leading token
	// is not an integer are skipped for this diagnostic only.
	LargestIDCell string
}

// Ingestor scans a directory of instrument exports and builds the CellIndex.
type Ingestor struct {
	dir     string
	ext     string
	workers int
	logger  *internal.Logger
}

// NewIngestor creates an ingestor from data configuration.
func NewIngestor(cfg config.DataConfig, logger *internal.Logger) *Ingestor {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Ingestor{
		dir:     cfg.Dir,
		ext:     cfg.FileExt,
		workers: cfg.IngestWorkers,
		logger:  logger,
	}
}

// BuildIndex parses every matching file under the data directory. A file that
// fails to parse is recorded in FailedFiles and skipped; only an unreadable
// directory pattern is an error. Files parse concurrently but the result is
// deterministic: the index is keyed by name and FailedFiles comes out sorted.
func (ing *Ingestor) BuildIndex(ctx context.Context) (*Index, error) {
	pattern := filepath.Join(ing.dir, "*"+ing.ext)
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan %s", pattern)
	}

	ing.logger.Info("[Ingestor] Found %d %s files in %s", len(paths), ing.ext, ing.dir)

	index := &Index{
		Cells:      make(eis.CellIndex, len(paths)),
		FilesFound: len(paths),
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ing.workers)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reader := mpt.NewReader(path)
			record, err := reader.Read()

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				ing.logger.Warn("[Ingestor] Skipping %s: %v", filepath.Base(path), err)
				index.FailedFiles = append(index.FailedFiles, filepath.Base(path))
				return nil
			}
			index.Cells[record.Name] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "ingest run canceled")
	}

	sort.Strings(index.FailedFiles)
	index.FilesLoaded = len(index.Cells)
	index.LargestIDCell = largestIDCell(index.Cells)

	ing.logger.Info("[Ingestor] Indexed %d/%d files (%d failed)",
		index.FilesLoaded, index.FilesFound, len(index.FailedFiles))

	return index, nil
}

// largestIDCell returns the cell name with the numerically largest leading
// id. Ties break toward the lexicographically smaller name so the diagnostic
// is stable across runs.
func largestIDCell(cells eis.CellIndex) string {
	best := ""
	bestID := 0
	for name, record := range cells {
		id, err := strconv.Atoi(record.LeadingID)
		if err != nil {
			continue
		}
		if best == "" || id > bestID || (id == bestID && name < best) {
			best = name
			bestID = id
		}
	}
	return best
}
