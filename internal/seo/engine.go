package seo

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/boopin/seo-url-analyzer/internal/model"
)

// Engine turns a single URL into a complete PageRecord.
type Engine struct {
	fetcher Fetcher
}

// NewEngine returns an Engine backed by the given Fetcher.
func NewEngine(fetcher Fetcher) *Engine {
	return &Engine{fetcher: fetcher}
}

// AnalyzePage fetches and analyzes one URL. Failures are reported on the
// returned record rather than as an error, so one bad URL never stops a
// batch. Failed records keep empty metrics and a nil LoadTimeMS.
func (e *Engine) AnalyzePage(ctx context.Context, rawURL string) model.PageRecord {
	record := model.PageRecord{
		URL:           rawURL,
		Status:        model.StatusError,
		Headings:      emptyHeadings(),
		HeadingCounts: HeadingCounts(nil),
	}

	base, err := url.Parse(rawURL)
	if err != nil || base.Host == "" || (base.Scheme != "http" && base.Scheme != "https") {
		record.Error = "invalid URL: only absolute http(s) URLs are supported"
		return record
	}

	res, err := e.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		record.Error = fetchErrorMessage(err)
		return record
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		record.Error = fmt.Sprintf("unexpected status %d", res.StatusCode)
		return record
	}

	loadTime := res.Elapsed.Milliseconds()
	record.LoadTimeMS = &loadTime

	doc, err := ParseDocument(res.Body)
	if err != nil {
		record.Error = fmt.Sprintf("parse failure: %v", err)
		return record
	}

	text := VisibleText(doc)
	headings := Headings(doc)
	internal, external := Links(doc, base)
	totalImages, missingAlt := ImageAudit(doc)

	record.Status = model.StatusSuccess
	record.Title = Title(doc)
	record.MetaDescription = MetaDescription(doc)
	record.Headings = headings
	record.HeadingCounts = HeadingCounts(headings)
	record.WordCount = WordCount(text)
	record.InternalLinks = internal
	record.ExternalLinks = external
	record.InternalLinkCount = len(internal)
	record.ExternalLinkCount = len(external)
	record.TotalImages = totalImages
	record.MissingAltCount = missingAlt
	record.MobileFriendly = MobileFriendly(doc)
	record.ReadabilityScore = FleschReadingEase(text)
	record.TopKeywords = TopKeywords(text, KeywordLimit)
	return record
}

func emptyHeadings() map[string][]string {
	return make(map[string][]string, len(model.HeadingLevels))
}

func fetchErrorMessage(err error) string {
	var netErr net.Error
	switch {
	case errors.As(err, &netErr) && netErr.Timeout(),
		errors.Is(err, context.DeadlineExceeded):
		return "fetch timed out"
	default:
		return fmt.Sprintf("fetch failed: %v", err)
	}
}
