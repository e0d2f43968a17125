package seo

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Subtrees whose text is never rendered to the reader.
var skippedElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"template": {},
	"iframe":   {},
}

// VisibleText returns the rendered text of the document body. Script,
// style, noscript, template and iframe subtrees are excluded; adjacent
// text nodes are joined with single spaces.
func VisibleText(doc *goquery.Document) string {
	var sb strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, skip := skippedElements[n.Data]; skip {
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	sel := doc.Find("body")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	for _, n := range sel.Nodes {
		walk(n)
	}

	return sb.String()
}

// WordCount is the number of whitespace-separated tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
