package seo

import "strings"

// Flesch Reading Ease coefficients.
const (
	freBase           = 206.835
	freSentenceWeight = 1.015
	freSyllableWeight = 84.6
)

// FleschReadingEase scores text on the standard scale where higher means
// easier to read (roughly 0-100 for ordinary prose, though the formula is
// unbounded). Empty text scores 0 rather than NaN.
func FleschReadingEase(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentences := countSentences(text)
	if sentences == 0 {
		sentences = 1
	}

	var syllables int
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordCount := float64(len(words))
	return freBase -
		freSentenceWeight*(wordCount/float64(sentences)) -
		freSyllableWeight*(float64(syllables)/wordCount)
}

// countSentences counts runs of sentence terminators, so "Wait..." ends
// one sentence, not three.
func countSentences(text string) int {
	count := 0
	inRun := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inRun {
				count++
				inRun = true
			}
		default:
			inRun = false
		}
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// countSyllables approximates syllables as runs of consecutive vowels,
// with the usual adjustment for a silent trailing "e". Words with letters
// count at least one syllable; letterless tokens count zero.
func countSyllables(word string) int {
	var letters []rune
	for _, r := range strings.ToLower(word) {
		if r >= 'a' && r <= 'z' {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range letters {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// Silent trailing e ("place", "time") unless it follows an l, where
	// it is usually voiced ("table", "little").
	if count > 1 && letters[len(letters)-1] == 'e' {
		prev := letters[len(letters)-2]
		if !isVowel(prev) && prev != 'l' {
			count--
		}
	}

	if count < 1 {
		count = 1
	}
	return count
}
