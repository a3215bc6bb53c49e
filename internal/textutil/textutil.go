// Package textutil provides text normalization for bag-of-words encoding.
package textutil

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Normalize splits a document on whitespace runs and lowercases each token.
// Empty or whitespace-only input yields an empty slice.
func Normalize(document string) []string {
	return lo.Map(strings.Fields(document), func(token string, _ int) string {
		return strings.ToLower(token)
	})
}

var (
	newlineRe    = regexp.MustCompile(`[\n\r]`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// NormalizeWhitespaces replaces newlines and multiple whitespace with a single space.
func NormalizeWhitespaces(text string) string {
	text = newlineRe.ReplaceAllString(text, " ")
	return multiSpaceRe.ReplaceAllString(text, " ")
}
