package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Run("short strings pass through", func(t *testing.T) {
		assert.Equal(t, "Review code", truncate("Review code", 60))
	})

	t.Run("long strings get an ellipsis", func(t *testing.T) {
		long := strings.Repeat("a", 80)
		got := truncate(long, 60)
		assert.Len(t, got, 60)
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("multibyte descriptions are cut on rune boundaries", func(t *testing.T) {
		long := strings.Repeat("概", 80)
		got := truncate(long, 60)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, 60, utf8.RuneCountInString(got))
		assert.True(t, strings.HasSuffix(got, "..."))
	})
}
