package seo

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
)

// ParseDocument builds a queryable document from raw HTML. The underlying
// parser follows the HTML5 recovery rules, so malformed markup never
// fails: unclosed tags are auto-closed and unknown tags are kept as
// plain elements. An error here means the input could not be read at all.
func ParseDocument(raw []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(raw))
}
