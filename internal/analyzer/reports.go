package analyzer

import (
	"sync"
	"time"

	"github.com/boopin/seo-url-analyzer/internal/model"
)

// ReportStore keeps finished reports in memory for the UI session so CSV
// exports can be served without re-running the analysis. Entries expire
// after the configured TTL; nothing is ever persisted.
type ReportStore struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	reports map[string]storedReport
}

type storedReport struct {
	report  *model.AnalysisReport
	savedAt time.Time
}

// NewReportStore returns an empty store whose entries expire after ttl.
func NewReportStore(ttl time.Duration) *ReportStore {
	return &ReportStore{
		ttl:     ttl,
		now:     time.Now,
		reports: make(map[string]storedReport),
	}
}

// Put saves a report under its ID, evicting any expired entries first.
func (s *ReportStore) Put(report *model.AnalysisReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()
	s.reports[report.ID] = storedReport{report: report, savedAt: s.now()}
}

// Get returns the report with the given ID, or false when it never
// existed or has expired.
func (s *ReportStore) Get(id string) (*model.AnalysisReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()
	stored, ok := s.reports[id]
	if !ok {
		return nil, false
	}
	return stored.report, true
}

// Len reports how many unexpired reports the store holds.
func (s *ReportStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()
	return len(s.reports)
}

func (s *ReportStore) evictLocked() {
	cutoff := s.now().Add(-s.ttl)
	for id, stored := range s.reports {
		if stored.savedAt.Before(cutoff) {
			delete(s.reports, id)
		}
	}
}
