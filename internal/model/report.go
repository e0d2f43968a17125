package model

import "time"

// Record statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// HeadingLevels lists the heading tags in rank order. Extractors, the CSV
// exporter, and the UI all iterate it so columns stay in the same order.
var HeadingLevels = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// Link is a hyperlink found on a page together with its anchor text.
type Link struct {
	URL        string `json:"url"`
	AnchorText string `json:"anchor_text"`
}

// Keyword is a token and how often it occurred in the page text.
type Keyword struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// PageRecord holds every metric extracted for a single URL. A record is
// produced even when the fetch fails: Status and Error tell the two cases
// apart, and failed records carry zeroed metrics and a nil LoadTimeMS.
type PageRecord struct {
	URL               string              `json:"url"`
	Status            string              `json:"status"`
	Error             string              `json:"error,omitempty"`
	LoadTimeMS        *int64              `json:"load_time_ms"`
	Title             string              `json:"title"`
	MetaDescription   string              `json:"meta_description"`
	Headings          map[string][]string `json:"headings"`
	HeadingCounts     map[string]int      `json:"heading_counts"`
	WordCount         int                 `json:"word_count"`
	InternalLinks     []Link              `json:"internal_links"`
	ExternalLinks     []Link              `json:"external_links"`
	InternalLinkCount int                 `json:"internal_link_count"`
	ExternalLinkCount int                 `json:"external_link_count"`
	TotalImages       int                 `json:"total_images"`
	MissingAltCount   int                 `json:"missing_alt_count"`
	MobileFriendly    bool                `json:"mobile_friendly"`
	ReadabilityScore  float64             `json:"readability_score"`
	TopKeywords       []Keyword           `json:"top_keywords"`
}

// Succeeded reports whether the page was fetched and parsed.
func (r *PageRecord) Succeeded() bool { return r.Status == StatusSuccess }

// AnalysisReport is the outcome of one analysis run: one record per input
// URL, in input order, plus aggregates over the successfully fetched pages.
// Reports live in memory for the UI session only.
type AnalysisReport struct {
	ID               string       `json:"id"`
	CreatedAt        time.Time    `json:"created_at"`
	Records          []PageRecord `json:"records"`
	AnalyzedCount    int          `json:"analyzed_count"`
	AvgWordCount     float64      `json:"avg_word_count"`
	AvgInternalLinks float64      `json:"avg_internal_links"`
	Truncated        bool         `json:"truncated"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}
