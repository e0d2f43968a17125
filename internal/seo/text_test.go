package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleText_SkipsNonRenderedContent(t *testing.T) {
	doc := mustParse(t, `<html><head>
		<title>Invisible</title>
		<style>body { color: red; }</style>
	</head><body>
		<h1>Heading</h1>
		<p>Visible paragraph.</p>
		<script>var hidden = "code";</script>
		<noscript>Enable JS</noscript>
		<template><p>stamped later</p></template>
	</body></html>`)

	text := VisibleText(doc)

	assert.Contains(t, text, "Heading")
	assert.Contains(t, text, "Visible paragraph.")
	assert.NotContains(t, text, "hidden")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Enable JS")
	assert.NotContains(t, text, "stamped later")
	assert.NotContains(t, text, "Invisible", "head content is not rendered")
}

func TestVisibleText_JoinsWithSingleSpaces(t *testing.T) {
	doc := mustParse(t, "<body><p>one</p>\n\n<p>  two  </p><span>three</span></body>")
	assert.Equal(t, "one two three", VisibleText(doc))
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "whitespace only", text: "  \n\t ", want: 0},
		{name: "simple", text: "one two three", want: 3},
		{name: "mixed whitespace", text: "one\ttwo\nthree  four", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordCount(tt.text))
		})
	}
}

func TestWordCount_AtLeastDistinctKeywords(t *testing.T) {
	doc := mustParse(t, `<body><p>Gophers build fast analyzers. Gophers like fast builds,
		clean parsers, and very clean reports.</p></body>`)

	text := VisibleText(doc)
	keywords := TopKeywords(text, -1) // unlimited

	assert.GreaterOrEqual(t, WordCount(text), len(keywords))
}
