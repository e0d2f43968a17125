package analyzer

import (
	"context"

	"github.com/boopin/seo-url-analyzer/internal/model"
)

// ReportProvider defines the contract for any analysis engine. Per-URL
// failures are reported on the records, never as an error, so a provider
// always returns a complete report for the URLs it was given.
type ReportProvider interface {
	Run(ctx context.Context, urls []string) *model.AnalysisReport
}
