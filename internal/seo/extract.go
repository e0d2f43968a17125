package seo

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/boopin/seo-url-analyzer/internal/model"
)

// Title returns the trimmed text of the first <title> element, or an
// empty string when the page has none.
func Title(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// MetaDescription returns the content attribute of the first
// <meta name="description"> tag, or an empty string when absent.
func MetaDescription(doc *goquery.Document) string {
	desc, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	return strings.TrimSpace(desc)
}

// Headings collects, for each level h1..h6, the trimmed text of every
// matching element in document order.
func Headings(doc *goquery.Document) map[string][]string {
	headings := make(map[string][]string, len(model.HeadingLevels))
	for _, level := range model.HeadingLevels {
		doc.Find(level).Each(func(_ int, sel *goquery.Selection) {
			headings[level] = append(headings[level], strings.TrimSpace(sel.Text()))
		})
	}
	return headings
}

// HeadingCounts derives per-level counts from an extracted headings map.
func HeadingCounts(headings map[string][]string) map[string]int {
	counts := make(map[string]int, len(model.HeadingLevels))
	for _, level := range model.HeadingLevels {
		counts[level] = len(headings[level])
	}
	return counts
}

// ImageAudit counts <img> elements and how many of them lack alt text.
// An empty alt attribute counts as missing.
func ImageAudit(doc *goquery.Document) (total, missingAlt int) {
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		total++
		if alt, ok := sel.Attr("alt"); !ok || strings.TrimSpace(alt) == "" {
			missingAlt++
		}
	})
	return total, missingAlt
}

// MobileFriendly reports whether the page declares a viewport meta tag.
func MobileFriendly(doc *goquery.Document) bool {
	return doc.Find(`meta[name="viewport"]`).Length() > 0
}
