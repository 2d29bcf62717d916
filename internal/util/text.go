package util

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

var whitespace = regexp.MustCompile(`\s+`)

// NormalizeWhitespace trims and collapses whitespace to single spaces.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// ContainsAnyCaseInsensitive returns true if text contains any of the needles (case-insensitive).
func ContainsAnyCaseInsensitive(text string, needles []string) bool {
	lt := strings.ToLower(text)
	for _, n := range needles {
		if strings.Contains(lt, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// Tokenize lowercases and splits on spaces and punctuation. Leading '#' is dropped.
func Tokenize(s string) []string {
	s = strings.ToLower(s)
	repl := strings.NewReplacer(
		",", " ", ".", " ", "!", " ", "?", " ", ":", " ", ";", " ", "#", " ", "\"", " ",
		"\n", " ", "\t", " ", "\r", " ", "(", " ", ")", " ", "[", " ", "]", " ",
	)
	s = repl.Replace(s)
	parts := strings.Fields(s)
	return parts
}

// RuneLen counts characters as code points.
func RuneLen(s string) int { return utf8.RuneCountInString(s) }

// TruncateRunes cuts s to at most n code points.
func TruncateRunes(s string, n int) (string, bool) {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s, false
	}
	runes := []rune(s)
	return string(runes[:n]), true
}

// FoldKey is the case-insensitive identity of a token.
// A Caser is stateful, so each call gets its own.
func FoldKey(s string) string { return cases.Fold().String(s) }

// NormalizeHashtag strips any mix of leading '#' and whitespace, trailing
// whitespace, and lowercases the tag. It is idempotent.
func NormalizeHashtag(tag string) string {
	tag = strings.TrimLeft(tag, "# \t\r\n")
	return strings.ToLower(strings.TrimSpace(tag))
}

// DedupeHashtags normalizes tags, drops empties and removes case-insensitive
// duplicates, keeping first occurrences in order. It returns the number removed as duplicates.
func DedupeHashtags(tags []string) ([]string, int) {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	dups := 0
	for _, t := range tags {
		n := NormalizeHashtag(t)
		if n == "" {
			continue
		}
		k := FoldKey(n)
		if _, ok := seen[k]; ok {
			dups++
			continue
		}
		seen[k] = struct{}{}
		out = append(out, n)
	}
	return out, dups
}

// SplitList splits a comma-separated list, trimming entries and dropping empties.
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
