package seo

import (
	"sort"
	"strings"
	"unicode"

	"github.com/boopin/seo-url-analyzer/internal/model"
)

// KeywordLimit is how many keywords a page record carries.
const KeywordLimit = 20

// TopKeywords tallies the lowercase tokens of text, with surrounding
// punctuation trimmed and English stopwords removed, and returns up to
// limit keywords sorted by descending count. Ties keep the order in which
// the words first appeared in the text. A negative limit returns every
// keyword.
func TopKeywords(text string, limit int) []model.Keyword {
	type stat struct {
		term  string
		count int
		first int
	}

	stats := make(map[string]*stat)
	for i, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.TrimFunc(token, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if token == "" || IsStopword(token) {
			continue
		}

		s, ok := stats[token]
		if !ok {
			s = &stat{term: token, first: i}
			stats[token] = s
		}
		s.count++
	}

	ordered := make([]*stat, 0, len(stats))
	for _, s := range stats {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].first < ordered[j].first
	})

	if limit >= 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}

	keywords := make([]model.Keyword, len(ordered))
	for i, s := range ordered {
		keywords[i] = model.Keyword{Term: s.term, Count: s.count}
	}
	return keywords
}
