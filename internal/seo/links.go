package seo

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/boopin/seo-url-analyzer/internal/model"
)

// Links resolves every a[href] on the page against the source URL and
// splits the results into internal links (resolved host equals the source
// host, case-insensitive) and external links. Anchors with non-http(s)
// targets (mailto:, javascript:, tel:) and unparseable hrefs are skipped.
func Links(doc *goquery.Document, base *url.URL) (internal, external []model.Link) {
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" {
			return
		}

		parsed, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(parsed)
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}

		link := model.Link{
			URL:        resolved.String(),
			AnchorText: strings.TrimSpace(sel.Text()),
		}
		if strings.EqualFold(resolved.Host, base.Host) {
			internal = append(internal, link)
		} else {
			external = append(external, link)
		}
	})

	return internal, external
}
