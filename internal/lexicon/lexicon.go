// Package lexicon detects the surface signals of a caption: hooks, links,
// calls to action, emoji and inline hashtags. Scoring and validation depend on
// the Analyzer interface only, so a smarter classifier can replace Lexical.
package lexicon

import (
	"regexp"
	"strings"
	"unicode"

	"postcraft/internal/util"
)

// Signals are the lexical features found in one caption.
type Signals struct {
	StartsWithCapital bool
	OpensWithNumber   bool
	HasQuestion       bool
	HasExclamation    bool
	HasEmoji          bool
	HasCallToAction   bool
	URLs              []string
	InlineHashtags    []string
	Words             int
}

// HasURL reports whether at least one link was found.
func (s Signals) HasURL() bool { return len(s.URLs) > 0 }

// Analyzer extracts Signals from text.
type Analyzer interface {
	Analyze(text string) Signals
}

var (
	reURL           = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s<>"]+`)
	reInlineHashtag = regexp.MustCompile(`(?:^|\s)#([\p{L}\p{N}_]+)`)
	reCallToAction  = regexp.MustCompile(`(?i)\b(comment|comments|share|follow|subscribe|link|click|tag a|tag someone|save this|sign up|learn more|let me know|dm me|reply|join us|tap)\b`)
)

// Lexical is the default regexp and rune-class based Analyzer.
type Lexical struct{}

// Default returns the stock analyzer.
func Default() Analyzer { return Lexical{} }

func (Lexical) Analyze(text string) Signals {
	var s Signals
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return s
	}
	first := []rune(trimmed)[0]
	s.StartsWithCapital = unicode.IsUpper(first)
	s.OpensWithNumber = unicode.IsDigit(first)
	s.HasQuestion = strings.ContainsAny(trimmed, "?？")
	s.HasExclamation = strings.ContainsAny(trimmed, "!！")
	s.HasEmoji = containsEmoji(trimmed)
	s.URLs = reURL.FindAllString(trimmed, -1)
	withoutURLs := reURL.ReplaceAllString(trimmed, " ")
	s.HasCallToAction = reCallToAction.MatchString(withoutURLs) || s.HasURL()
	for _, m := range reInlineHashtag.FindAllStringSubmatch(withoutURLs, -1) {
		s.InlineHashtags = append(s.InlineHashtags, strings.ToLower(m[1]))
	}
	s.Words = len(strings.Fields(util.NormalizeWhitespace(trimmed)))
	return s
}

// ContainsURL is a shortcut for callers that only need link detection.
func ContainsURL(text string) bool { return reURL.MatchString(text) }

func containsEmoji(s string) bool {
	for _, r := range s {
		switch {
		case r >= 0x1F300 && r <= 0x1FAFF:
			return true
		case r >= 0x2600 && r <= 0x27BF:
			return true
		case unicode.Is(unicode.So, r):
			return true
		}
	}
	return false
}
