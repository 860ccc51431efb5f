package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSnippet(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		assert.Equal(t, "", MakeSnippet("", "query", 50))
	})

	t.Run("short text returned verbatim", func(t *testing.T) {
		assert.Equal(t, "Short text", MakeSnippet("Short text", "text", 50))
	})

	t.Run("match is kept inside the window", func(t *testing.T) {
		text := "This is a long text about dragons and their treasures"
		snippet := MakeSnippet(text, "dragon", 30)

		assert.Contains(t, strings.ToLower(snippet), "dragon")
		// Window plus at most two ellipsis markers
		assert.LessOrEqual(t, len([]rune(snippet)), 30+2*len(Ellipsis))
	})

	t.Run("match is case-insensitive", func(t *testing.T) {
		text := "The mighty DRAGON sleeps on a hoard of gold coins and gems deep below"
		snippet := MakeSnippet(text, "dragon", 20)
		assert.Contains(t, strings.ToLower(snippet), "dragon")
	})

	t.Run("query not found falls back to the head", func(t *testing.T) {
		text := "The quick brown fox jumps over the lazy dog near the river bank"
		snippet := MakeSnippet(text, "notfound", 20)

		assert.True(t, strings.HasPrefix(snippet, "The quick brown fox "))
		assert.True(t, strings.HasSuffix(snippet, Ellipsis))
	})

	t.Run("match near the start clips only the tail", func(t *testing.T) {
		text := "dragon hunting is a dangerous pastime for the unprepared adventurer"
		snippet := MakeSnippet(text, "dragon", 20)

		assert.False(t, strings.HasPrefix(snippet, Ellipsis))
		assert.True(t, strings.HasSuffix(snippet, Ellipsis))
		assert.Contains(t, snippet, "dragon")
	})

	t.Run("match near the end clips only the head", func(t *testing.T) {
		text := "a dangerous pastime for the unprepared adventurer is hunting a dragon"
		snippet := MakeSnippet(text, "dragon", 20)

		assert.True(t, strings.HasPrefix(snippet, Ellipsis))
		assert.False(t, strings.HasSuffix(snippet, Ellipsis))
		assert.Contains(t, snippet, "dragon")
	})

	t.Run("multi-byte runes are windowed by rune count", func(t *testing.T) {
		text := "Der mächtige Drache schläft über einem Hort aus Gold und Juwelen tief unten"
		snippet := MakeSnippet(text, "drache", 25)

		assert.Contains(t, strings.ToLower(snippet), "drache")
		trimmed := strings.TrimPrefix(strings.TrimSuffix(snippet, Ellipsis), Ellipsis)
		assert.LessOrEqual(t, len([]rune(trimmed)), 25)
	})
}

func BenchmarkMakeSnippet(b *testing.B) {
	text := strings.Repeat("gold coins, dragon ham, serpent sword, ", 40) + "dragon shield"
	for i := 0; i < b.N; i++ {
		MakeSnippet(text, "shield", 150)
	}
}
