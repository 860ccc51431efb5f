package search

import "strings"

// Ellipsis marks a clipped snippet edge
const Ellipsis = "..."

// MakeSnippet produces a bounded excerpt of text for display in search
// results. Text short enough is returned verbatim. Otherwise the excerpt
// is a window of maxLength runes centered as closely as possible on the
// first case-insensitive occurrence of query, with ellipsis markers on
// any clipped edge; when the query does not occur, the head of the text
// is used. The result may exceed maxLength by the markers only.
func MakeSnippet(text, query string, maxLength int) string {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	idx := foldIndex(text, query)
	if idx < 0 {
		return string(runes[:maxLength]) + Ellipsis
	}

	queryLen := len([]rune(query))
	start := idx - (maxLength-queryLen)/2
	if start+maxLength > len(runes) {
		start = len(runes) - maxLength
	}
	if start < 0 {
		start = 0
	}
	end := start + maxLength

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = Ellipsis + snippet
	}
	if end < len(runes) {
		snippet += Ellipsis
	}
	return snippet
}

// foldIndex returns the rune offset of the first case-insensitive
// occurrence of query in text, or -1
func foldIndex(text, query string) int {
	haystack := []rune(strings.ToLower(text))
	needle := []rune(strings.ToLower(query))

	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if equalRunes(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func equalRunes(a, b []rune) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
