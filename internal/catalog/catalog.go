// Package catalog loads every snapshot in a store into a ranked repository catalog.
package catalog

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/huangsam/starchart/internal/contract"
	"github.com/huangsam/starchart/internal/snapshot"
	"github.com/huangsam/starchart/schema"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// ErrStoreUnreachable is returned when the snapshot store cannot be listed.
var ErrStoreUnreachable = errors.New("snapshot store unreachable")

// Loader reads a store into a catalog with a bounded pool of workers.
type Loader struct {
	store    contract.SnapshotStore
	workers  int
	progress io.Writer // nil disables the progress bar
}

// Option configures a Loader.
type Option func(*Loader)

// WithWorkers sets how many files are fetched concurrently.
func WithWorkers(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithProgress draws a progress bar on w while files are fetched.
func WithProgress(w io.Writer) Option {
	return func(l *Loader) {
		l.progress = w
	}
}

// NewLoader creates a loader for store.
func NewLoader(store contract.SnapshotStore, opts ...Option) *Loader {
	l := &Loader{store: store, workers: contract.DefaultWorkers}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// loadResult is what one worker reports for one file.
type loadResult struct {
	file   string
	record schema.RepositoryRecord
	err    error
}

// Load lists the store and parses every snapshot in it.
// Malformed files are skipped and recorded in Catalog.Skipped. When the store
// cannot be listed, an empty catalog is returned with an error wrapping
// ErrStoreUnreachable. Cancelling ctx stops the load and returns ctx's error.
func (l *Loader) Load(ctx context.Context) (schema.Catalog, error) {
	log := contract.Logger().WithField("source", l.store.Location())
	catalog := schema.Catalog{Source: l.store.Location(), Records: []schema.RepositoryRecord{}}

	files, err := l.store.List(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return catalog, ctxErr
		}
		return catalog, fmt.Errorf("%w: %s: %w", ErrStoreUnreachable, l.store.Location(), err)
	}
	log.WithField("files", len(files)).Debug("listed snapshot store")

	results := l.fetchAll(ctx, files)
	if err := ctx.Err(); err != nil {
		return schema.Catalog{Source: catalog.Source, Records: []schema.RepositoryRecord{}}, err
	}

	// Results arrive in completion order; walk them in listing order.
	byFile := make(map[string]loadResult, len(results))
	for _, r := range results {
		byFile[r.file] = r
	}
	seen := make(map[string]string, len(files))
	for _, file := range files {
		r := byFile[file]
		if r.err != nil {
			log.WithFields(logrus.Fields{"file": file, "error": r.err}).Warn("skipping snapshot")
			catalog.Skipped = append(catalog.Skipped, schema.SnapshotIssue{File: file, Reason: r.err.Error()})
			continue
		}
		if prev, ok := seen[r.record.Name]; ok {
			reason := fmt.Sprintf("duplicate repository %s, already loaded from %s", r.record.Name, prev)
			log.WithFields(logrus.Fields{"file": file, "repository": r.record.Name}).Warn("skipping duplicate snapshot")
			catalog.Skipped = append(catalog.Skipped, schema.SnapshotIssue{File: file, Reason: reason})
			continue
		}
		seen[r.record.Name] = file
		catalog.Records = append(catalog.Records, r.record)
	}

	SortRecords(catalog.Records)
	log.WithFields(logrus.Fields{"records": len(catalog.Records), "skipped": len(catalog.Skipped)}).Debug("loaded catalog")
	return catalog, nil
}

// fetchAll reads and parses files with l.workers goroutines.
func (l *Loader) fetchAll(ctx context.Context, files []string) []loadResult {
	if len(files) == 0 {
		return nil
	}

	var bar *progressbar.ProgressBar
	if l.progress != nil {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(20),
			progressbar.OptionSetDescription("[cyan]Loading snapshots[reset]"),
			progressbar.OptionSetWriter(l.progress),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]#[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: "-",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	fileCh := make(chan string, len(files))
	resultCh := make(chan loadResult, len(files))
	var wg sync.WaitGroup

	for range min(l.workers, len(files)) {
		wg.Go(func() {
			for f := range fileCh {
				if ctx.Err() != nil {
					continue
				}
				resultCh <- l.fetchOne(ctx, f)
				if bar != nil {
					_ = bar.Add(1)
				}
			}
		})
	}

	for _, f := range files {
		fileCh <- f
	}
	close(fileCh)

	wg.Wait()
	close(resultCh)
	if bar != nil {
		_ = bar.Finish()
	}

	results := make([]loadResult, 0, len(files))
	for r := range resultCh {
		results = append(results, r)
	}
	return results
}

func (l *Loader) fetchOne(ctx context.Context, file string) loadResult {
	data, err := l.store.Read(ctx, file)
	if err != nil {
		return loadResult{file: file, err: &snapshot.ParseError{File: file, Err: err}}
	}
	record, err := snapshot.Parse(file, data)
	return loadResult{file: file, record: record, err: err}
}

// SortRecords orders records by descending total stars, then ascending name.
func SortRecords(records []schema.RepositoryRecord) {
	slices.SortStableFunc(records, func(a, b schema.RepositoryRecord) int {
		if c := cmp.Compare(b.TotalStars, a.TotalStars); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}
