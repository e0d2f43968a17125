package seo

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := ParseDocument([]byte(html))
	require.NoError(t, err)
	return doc
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{name: "simple title", html: `<html><head><title>Hello World</title></head></html>`, want: "Hello World"},
		{name: "surrounding whitespace trimmed", html: `<title>  padded  </title>`, want: "padded"},
		{name: "first title wins", html: `<title>First</title><title>Second</title>`, want: "First"},
		{name: "missing title", html: `<html><body><p>text</p></body></html>`, want: ""},
		{name: "empty title", html: `<title></title>`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(mustParse(t, tt.html)))
		})
	}
}

func TestMetaDescription(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "present",
			html: `<head><meta name="description" content="A fine page."></head>`,
			want: "A fine page.",
		},
		{
			name: "absent",
			html: `<head><meta name="keywords" content="a,b"></head>`,
			want: "",
		},
		{
			name: "content trimmed",
			html: `<meta name="description" content="  spaced  ">`,
			want: "spaced",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MetaDescription(mustParse(t, tt.html)))
		})
	}
}

func TestHeadings(t *testing.T) {
	doc := mustParse(t, `<body>
		<h1>One</h1>
		<h2>Two A</h2>
		<h1>One Again</h1>
		<h2>Two B</h2>
		<h6> Deep </h6>
	</body>`)

	headings := Headings(doc)

	assert.Equal(t, []string{"One", "One Again"}, headings["h1"])
	assert.Equal(t, []string{"Two A", "Two B"}, headings["h2"])
	assert.Equal(t, []string{"Deep"}, headings["h6"])
	assert.Empty(t, headings["h3"])

	counts := HeadingCounts(headings)
	assert.Equal(t, 2, counts["h1"])
	assert.Equal(t, 2, counts["h2"])
	assert.Equal(t, 0, counts["h4"])
	assert.Equal(t, 1, counts["h6"])
}

func TestHeadingCounts_NilMap(t *testing.T) {
	counts := HeadingCounts(nil)
	require.Len(t, counts, 6)
	for _, n := range counts {
		assert.Zero(t, n)
	}
}

func TestImageAudit(t *testing.T) {
	doc := mustParse(t, `<body>
		<img src="a.png" alt="a diagram">
		<img src="b.png" alt="">
		<img src="c.png">
	</body>`)

	total, missing := ImageAudit(doc)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, missing, "empty alt counts as missing")
}

func TestMobileFriendly(t *testing.T) {
	withViewport := mustParse(t, `<head><meta name="viewport" content="width=device-width"></head>`)
	assert.True(t, MobileFriendly(withViewport))

	without := mustParse(t, `<head><meta name="description" content="x"></head>`)
	assert.False(t, MobileFriendly(without))
}
