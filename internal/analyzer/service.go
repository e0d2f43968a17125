package analyzer

import (
	"context"
	"log/slog"
	"time"

	"github.com/boopin/seo-url-analyzer/internal/model"
	"github.com/boopin/seo-url-analyzer/internal/platform/requestid"
)

// Service orchestrates a ReportProvider and logs batch outcomes.
type Service struct {
	provider ReportProvider
	logger   *slog.Logger
}

// NewService creates a Service backed by the given provider.
func NewService(provider ReportProvider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Analyze runs the provider over the URL list and logs the outcome.
func (s *Service) Analyze(ctx context.Context, urls []string) *model.AnalysisReport {
	logger := s.logger.With(
		"request_id", requestid.FromContext(ctx),
		"url_count", len(urls),
	)

	start := time.Now()
	report := s.provider.Run(ctx, urls)

	logger.Info("analysis complete",
		"report_id", report.ID,
		"analyzed", report.AnalyzedCount,
		"failed", len(report.Records)-report.AnalyzedCount,
		"avg_word_count", report.AvgWordCount,
		"avg_internal_links", report.AvgInternalLinks,
		"duration", time.Since(start).String(),
	)
	return report
}
