// Package core has core logic for building, aligning and summarizing star histories.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/starchart/internal/catalog"
	"github.com/huangsam/starchart/internal/contract"
	"github.com/huangsam/starchart/internal/outwriter"
	"github.com/huangsam/starchart/internal/snapshot"
	"github.com/huangsam/starchart/schema"
)

// ExecutorFunc defines the function signature for executing a command.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ErrRepositoryNotFound is returned when a requested repository is not in the catalog.
var ErrRepositoryNotFound = errors.New("repository not found")

// LoadCatalog reads every snapshot from the configured store.
func LoadCatalog(ctx context.Context, cfg *contract.Config) (schema.Catalog, error) {
	if !shouldSuppressHeader(ctx) {
		outwriter.LogLoadHeader(cfg)
	}
	store := snapshot.NewStore(cfg.Source, cfg.Timeout)
	opts := []catalog.Option{catalog.WithWorkers(cfg.Workers)}
	if cfg.Progress && allowProgress(ctx) {
		opts = append(opts, catalog.WithProgress(os.Stderr))
	}
	return catalog.NewLoader(store, opts...).Load(ctx)
}

// ExecuteCatalog prints the ranked repository list.
// It serves as the main entry point for the 'catalog' command.
func ExecuteCatalog(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	cat, err := LoadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	if cat.Empty() {
		return outwriter.PrintEmptyCatalog(cat, cfg)
	}
	ranked := RankRecords(cat.Records, cfg.ResultLimit)
	return outwriter.PrintCatalogResults(ranked, cat, cfg, time.Since(start))
}

// ExecuteSeries prints the cumulative series of the first configured repository.
func ExecuteSeries(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	if len(cfg.Repositories) == 0 {
		return errors.New("a repository name is required")
	}
	result, err := GetSeriesResult(ctx, cfg, cfg.Repositories[0])
	if err != nil {
		return err
	}
	return outwriter.PrintSeriesResults(result, cfg, time.Since(start))
}

// ExecuteAlign prints the aligned series of the selection.
// Without explicit repositories the top repository is selected.
func ExecuteAlign(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	state, cat, err := loadDashboard(ctx, cfg)
	if err != nil {
		return err
	}
	if state.Status == schema.EmptyStatus {
		switch cfg.Output {
		case schema.TextOut, schema.JSONOut:
			return outwriter.PrintEmptyCatalog(cat, cfg)
		}
		outwriter.PrintNotice(outwriter.EmptyCatalogNotice(cat))
	}
	return outwriter.PrintAlignedResults(state.ChartData(), cfg, time.Since(start))
}

// ExecuteDashboard writes the HTML dashboard for the selection.
// An empty catalog still produces a page with a "No data available" chart.
func ExecuteDashboard(ctx context.Context, cfg *contract.Config) error {
	state, _, err := loadDashboard(ctx, cfg)
	if err != nil {
		return err
	}
	ranked := RankRecords(state.Records, cfg.ResultLimit)
	return outwriter.PrintDashboard(state.ChartData(), ranked, cfg)
}

// ExecuteReadme writes the ranked catalog as a markdown README.
// An empty catalog still produces the document with an empty table.
func ExecuteReadme(ctx context.Context, cfg *contract.Config) error {
	cat, err := LoadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	if cat.Empty() && !shouldSuppressHeader(ctx) {
		outwriter.PrintNotice(outwriter.EmptyCatalogNotice(cat))
	}
	return outwriter.PrintReadme(RankRecords(cat.Records, cfg.ResultLimit), cfg, time.Now())
}

// ExecuteHistory writes the aggregated history document.
func ExecuteHistory(ctx context.Context, cfg *contract.Config) error {
	cat, err := LoadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	if cat.Empty() && !shouldSuppressHeader(ctx) {
		outwriter.PrintNotice(outwriter.EmptyCatalogNotice(cat))
	}
	return outwriter.PrintHistory(BuildHistory(cat.Records, time.Now()), cfg)
}

// GetCatalogResults returns the ranked catalog without printing it.
func GetCatalogResults(ctx context.Context, cfg *contract.Config) ([]schema.RankedRepository, schema.Catalog, error) {
	cat, err := LoadCatalog(withoutProgress(ctx), cfg)
	if err != nil {
		return nil, cat, err
	}
	return RankRecords(cat.Records, cfg.ResultLimit), cat, nil
}

// GetSeriesResult returns the cumulative series of one repository.
func GetSeriesResult(ctx context.Context, cfg *contract.Config, name string) (schema.SeriesResult, error) {
	cat, err := LoadCatalog(ctx, cfg)
	if err != nil {
		return schema.SeriesResult{}, err
	}
	record, ok := cat.Find(name)
	if !ok {
		return schema.SeriesResult{}, fmt.Errorf("%w: %s in %s (expected snapshot %s)",
			ErrRepositoryNotFound, name, cat.Source, schema.FileNameFromRepoName(name))
	}
	return RecordSeries(record), nil
}

// GetAlignedResult returns the aligned series of the configured selection.
func GetAlignedResult(ctx context.Context, cfg *contract.Config) (schema.AlignedResult, error) {
	state, _, err := loadDashboard(withoutProgress(ctx), cfg)
	if err != nil {
		return schema.AlignedResult{}, err
	}
	return state.ChartData(), nil
}

// loadDashboard loads the catalog and drives the dashboard state to the
// configured selection and metric.
func loadDashboard(ctx context.Context, cfg *contract.Config) (DashboardState, schema.Catalog, error) {
	state := NewDashboardState(cfg.MaxSelections)
	cat, err := LoadCatalog(ctx, cfg)
	if err != nil {
		return Reduce(state, Failed{Err: err}), cat, err
	}

	state = ReduceAll(state, Loaded{Records: cat.Records}, SetMetric{Metric: cfg.Metric})
	if len(cfg.Repositories) == 0 || state.Status == schema.EmptyStatus {
		return state, cat, nil
	}

	state = Reduce(state, ClearSelection{})
	for _, name := range cfg.Repositories {
		next := Reduce(state, Toggle{Name: name})
		if !next.IsSelected(name) {
			if _, ok := cat.Find(name); !ok {
				return state, cat, fmt.Errorf("%w: %s in %s", ErrRepositoryNotFound, name, cat.Source)
			}
			contract.Logger().WithField("repository", name).Warnf("selection limit of %d reached, ignoring", state.MaxSelections)
		}
		state = next
	}
	return state, cat, nil
}
