// Package export serializes analysis reports to CSV. Column orders are
// part of the tool's contract: they stay stable across runs so downstream
// spreadsheets and scripts can rely on them.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/boopin/seo-url-analyzer/internal/model"
)

// MainHeader is the column order of the per-URL metrics table.
var MainHeader = []string{
	"url", "status", "load_time_ms", "title", "meta_description",
	"word_count", "readability_score",
	"h1_count", "h2_count", "h3_count", "h4_count", "h5_count", "h6_count",
	"internal_link_count", "external_link_count",
	"total_images", "missing_alt_count", "mobile_friendly", "top_keywords",
}

// HeadingsHeader is the column order of the headings table. Heading texts
// for a level are joined with " | ".
var HeadingsHeader = []string{
	"url",
	"h1_count", "h2_count", "h3_count", "h4_count", "h5_count", "h6_count",
	"h1_text", "h2_text", "h3_text", "h4_text", "h5_text", "h6_text",
}

// LinksHeader is the column order of the internal and external link
// tables, one row per link.
var LinksHeader = []string{"page_url", "link_url", "anchor_text"}

// WriteMain writes the per-URL metrics table, one row per input URL.
func WriteMain(w io.Writer, report *model.AnalysisReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(MainHeader); err != nil {
		return err
	}

	for i := range report.Records {
		rec := &report.Records[i]
		row := []string{
			rec.URL,
			rec.Status,
			formatLoadTime(rec.LoadTimeMS),
			rec.Title,
			rec.MetaDescription,
			strconv.Itoa(rec.WordCount),
			FormatScore(rec.ReadabilityScore),
		}
		for _, level := range model.HeadingLevels {
			row = append(row, strconv.Itoa(rec.HeadingCounts[level]))
		}
		row = append(row,
			strconv.Itoa(rec.InternalLinkCount),
			strconv.Itoa(rec.ExternalLinkCount),
			strconv.Itoa(rec.TotalImages),
			strconv.Itoa(rec.MissingAltCount),
			strconv.FormatBool(rec.MobileFriendly),
			formatKeywords(rec.TopKeywords),
		)
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteHeadings writes the headings table, one row per input URL.
func WriteHeadings(w io.Writer, report *model.AnalysisReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(HeadingsHeader); err != nil {
		return err
	}

	for i := range report.Records {
		rec := &report.Records[i]
		row := []string{rec.URL}
		for _, level := range model.HeadingLevels {
			row = append(row, strconv.Itoa(rec.HeadingCounts[level]))
		}
		for _, level := range model.HeadingLevels {
			row = append(row, strings.Join(rec.Headings[level], " | "))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteInternalLinks writes the internal-links table, one row per link.
func WriteInternalLinks(w io.Writer, report *model.AnalysisReport) error {
	return writeLinks(w, report, func(rec *model.PageRecord) []model.Link {
		return rec.InternalLinks
	})
}

// WriteExternalLinks writes the external-links table, one row per link.
func WriteExternalLinks(w io.Writer, report *model.AnalysisReport) error {
	return writeLinks(w, report, func(rec *model.PageRecord) []model.Link {
		return rec.ExternalLinks
	})
}

func writeLinks(w io.Writer, report *model.AnalysisReport, pick func(*model.PageRecord) []model.Link) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(LinksHeader); err != nil {
		return err
	}

	for i := range report.Records {
		rec := &report.Records[i]
		for _, link := range pick(rec) {
			if err := cw.Write([]string{rec.URL, link.URL, link.AnchorText}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// FormatScore renders a readability score the way every CSV does, with
// two decimal places.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

func formatLoadTime(ms *int64) string {
	if ms == nil {
		return ""
	}
	return strconv.FormatInt(*ms, 10)
}

func formatKeywords(keywords []model.Keyword) string {
	parts := make([]string, len(keywords))
	for i, kw := range keywords {
		parts[i] = kw.Term + ":" + strconv.Itoa(kw.Count)
	}
	return strings.Join(parts, "; ")
}
