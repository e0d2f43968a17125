package seo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/boopin/seo-url-analyzer/internal/model"
)

// Aggregator fans a URL list out to the engine and assembles the report.
type Aggregator struct {
	engine      *Engine
	concurrency int
}

// NewAggregator returns an Aggregator that analyzes up to concurrency
// URLs at a time. A concurrency of 1 processes the list strictly in
// input order.
func NewAggregator(engine *Engine, concurrency int) *Aggregator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Aggregator{engine: engine, concurrency: concurrency}
}

// Run analyzes every URL and computes cross-page averages over the
// successfully fetched pages only. Each record is written to its input
// slot, so report order matches input order regardless of fetch
// completion order, and one URL's failure never affects another's record.
// An empty URL list yields an empty report with zero averages.
func (a *Aggregator) Run(ctx context.Context, urls []string) *model.AnalysisReport {
	records := make([]model.PageRecord, len(urls))

	g := new(errgroup.Group)
	g.SetLimit(a.concurrency)
	for i, u := range urls {
		g.Go(func() error {
			records[i] = a.engine.AnalyzePage(ctx, u)
			return nil
		})
	}
	// Workers never return errors; per-URL failures live on the records.
	_ = g.Wait()

	report := &model.AnalysisReport{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Records:   records,
	}

	var words, links int
	for i := range records {
		if records[i].Succeeded() {
			report.AnalyzedCount++
			words += records[i].WordCount
			links += records[i].InternalLinkCount
		}
	}
	if report.AnalyzedCount > 0 {
		n := float64(report.AnalyzedCount)
		report.AvgWordCount = float64(words) / n
		report.AvgInternalLinks = float64(links) / n
	}

	return report
}
