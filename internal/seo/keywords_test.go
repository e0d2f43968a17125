package seo

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boopin/seo-url-analyzer/internal/model"
)

func TestTopKeywords_CountsAndFilters(t *testing.T) {
	text := "Go go GO gophers love Go. The the the quick, brown gophers!"

	keywords := TopKeywords(text, KeywordLimit)

	require.NotEmpty(t, keywords)
	assert.Equal(t, model.Keyword{Term: "go", Count: 4}, keywords[0],
		"case and trailing punctuation are normalized away")

	for _, kw := range keywords {
		assert.False(t, IsStopword(kw.Term), "stopword %q leaked into keywords", kw.Term)
	}
}

func TestTopKeywords_SortedDescendingWithStableTies(t *testing.T) {
	// beta appears first, both words occur twice: the tie keeps
	// first-occurrence order.
	keywords := TopKeywords("beta alpha beta alpha", 20)

	require.Len(t, keywords, 2)
	assert.Equal(t, "beta", keywords[0].Term)
	assert.Equal(t, "alpha", keywords[1].Term)

	for i := 1; i < len(keywords); i++ {
		assert.GreaterOrEqual(t, keywords[i-1].Count, keywords[i].Count)
	}
}

func TestTopKeywords_LimitApplies(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&sb, "token%02d ", i)
	}

	keywords := TopKeywords(sb.String(), KeywordLimit)
	assert.Len(t, keywords, KeywordLimit)

	all := TopKeywords(sb.String(), -1)
	assert.Len(t, all, 50)
}

func TestTopKeywords_EmptyAndNoise(t *testing.T) {
	assert.Empty(t, TopKeywords("", KeywordLimit))
	assert.Empty(t, TopKeywords("the and of to a in", KeywordLimit), "pure stopwords yield nothing")
	assert.Empty(t, TopKeywords("!!! --- ???", KeywordLimit), "pure punctuation yields nothing")
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("The"))
	assert.False(t, IsStopword("gopher"))
}
