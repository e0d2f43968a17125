package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boopin/seo-url-analyzer/internal/model"
)

func sampleReport() *model.AnalysisReport {
	loadTime := int64(120)
	return &model.AnalysisReport{
		ID: "report-1",
		Records: []model.PageRecord{
			{
				URL:             "https://example.com",
				Status:          model.StatusSuccess,
				LoadTimeMS:      &loadTime,
				Title:           "Example",
				MetaDescription: "An example page",
				Headings: map[string][]string{
					"h1": {"Main"},
					"h2": {"First", "Second"},
				},
				HeadingCounts:     map[string]int{"h1": 1, "h2": 2, "h3": 0, "h4": 0, "h5": 0, "h6": 0},
				WordCount:         345,
				ReadabilityScore:  67.125,
				InternalLinks:     []model.Link{{URL: "https://example.com/a", AnchorText: "A"}},
				ExternalLinks:     []model.Link{{URL: "https://other.net/b", AnchorText: "B"}},
				InternalLinkCount: 1,
				ExternalLinkCount: 1,
				TotalImages:       4,
				MissingAltCount:   1,
				MobileFriendly:    true,
				TopKeywords: []model.Keyword{
					{Term: "example", Count: 7},
					{Term: "page", Count: 3},
				},
			},
			{
				URL:           "https://down.example.com",
				Status:        model.StatusError,
				Error:         "fetch timed out",
				Headings:      map[string][]string{},
				HeadingCounts: map[string]int{"h1": 0, "h2": 0, "h3": 0, "h4": 0, "h5": 0, "h6": 0},
			},
		},
		AnalyzedCount: 1,
	}
}

func TestWriteMain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMain(&buf, sampleReport()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per URL")

	assert.Equal(t, MainHeader, rows[0])

	ok := rows[1]
	assert.Equal(t, "https://example.com", ok[0])
	assert.Equal(t, "success", ok[1])
	assert.Equal(t, "120", ok[2])
	assert.Equal(t, "345", ok[5])
	assert.Equal(t, "67.13", ok[6])
	assert.Equal(t, "1", ok[7], "h1_count")
	assert.Equal(t, "2", ok[8], "h2_count")
	assert.Equal(t, "true", ok[len(ok)-2])
	assert.Equal(t, "example:7; page:3", ok[len(ok)-1])

	failed := rows[2]
	assert.Equal(t, "error", failed[1])
	assert.Equal(t, "", failed[2], "failed fetch has no load time")
}

// Re-parsing the main CSV yields the same (url, word_count,
// readability_score) tuples as the in-memory report.
func TestWriteMain_RoundTrip(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	require.NoError(t, WriteMain(&buf, report))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(report.Records)+1)

	for i, rec := range report.Records {
		row := rows[i+1]
		assert.Equal(t, rec.URL, row[0])

		wordCount, err := strconv.Atoi(row[5])
		require.NoError(t, err)
		assert.Equal(t, rec.WordCount, wordCount)

		score, err := strconv.ParseFloat(row[6], 64)
		require.NoError(t, err)
		assert.Equal(t, FormatScore(rec.ReadabilityScore), FormatScore(score))
	}
}

func TestWriteHeadings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeadings(&buf, sampleReport()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, HeadingsHeader, rows[0])

	ok := rows[1]
	assert.Equal(t, "https://example.com", ok[0])
	assert.Equal(t, "1", ok[1], "h1_count")
	assert.Equal(t, "2", ok[2], "h2_count")
	assert.Equal(t, "Main", ok[7], "h1_text")
	assert.Equal(t, "First | Second", ok[8], "h2_text")
}

func TestWriteLinks(t *testing.T) {
	report := sampleReport()

	var buf bytes.Buffer
	require.NoError(t, WriteInternalLinks(&buf, report))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus one row per internal link")
	assert.Equal(t, LinksHeader, rows[0])
	assert.Equal(t, []string{"https://example.com", "https://example.com/a", "A"}, rows[1])

	buf.Reset()
	require.NoError(t, WriteExternalLinks(&buf, report))
	rows, err = csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"https://example.com", "https://other.net/b", "B"}, rows[1])
}

// Headers are a contract; a reorder is a breaking change.
func TestHeadersAreStable(t *testing.T) {
	assert.Equal(t, []string{
		"url", "status", "load_time_ms", "title", "meta_description",
		"word_count", "readability_score",
		"h1_count", "h2_count", "h3_count", "h4_count", "h5_count", "h6_count",
		"internal_link_count", "external_link_count",
		"total_images", "missing_alt_count", "mobile_friendly", "top_keywords",
	}, MainHeader)

	assert.Equal(t, []string{"page_url", "link_url", "anchor_text"}, LinksHeader)
}
