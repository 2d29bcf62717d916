// Package adapt renders one draft for each target platform: it truncates the
// caption, trims hashtags to the platform limit and records what it changed.
package adapt

import (
	"fmt"

	"postcraft/internal/lexicon"
	"postcraft/internal/model"
	"postcraft/internal/platform"
	"postcraft/internal/util"
)

// Adapter produces platform renderings. The zero value uses the default analyzer.
type Adapter struct {
	Analyzer lexicon.Analyzer
}

// New returns an Adapter backed by a.
func New(a lexicon.Analyzer) *Adapter { return &Adapter{Analyzer: a} }

var std = &Adapter{}

// Adapt renders draft for p with the default analyzer.
func Adapt(draft model.ContentDraft, p platform.Platform) model.PlatformRendering {
	return std.Adapt(draft, p)
}

// AdaptForAllPlatforms renders draft for every platform in declaration order.
func AdaptForAllPlatforms(draft model.ContentDraft) []model.PlatformRendering {
	return std.AdaptForAllPlatforms(draft)
}

func (a *Adapter) analyzer() lexicon.Analyzer {
	if a == nil || a.Analyzer == nil {
		return lexicon.Default()
	}
	return a.Analyzer
}

// Adapt renders draft for p. It never fails and never mutates draft.
func (a *Adapter) Adapt(draft model.ContentDraft, p platform.Platform) model.PlatformRendering {
	prof := p.Profile()
	out := model.PlatformRendering{
		Platform:      p,
		MaxCharacters: prof.CaptionLimit,
		Hashtags:      []string{},
		Warnings:      []string{},
		Optimizations: []string{},
	}

	content, truncated := util.TruncateRunes(draft.Caption, prof.CaptionLimit)
	out.Content = content
	out.Truncated = truncated
	if truncated {
		out.Warnings = append(out.Warnings, fmt.Sprintf("Content truncated to fit %s limit", p.DisplayName()))
	}

	tags, dups := util.DedupeHashtags(draft.Hashtags)
	if dups > 0 {
		out.Optimizations = append(out.Optimizations, fmt.Sprintf("Removed %d duplicate %s", dups, plural(dups, "hashtag")))
	}
	if len(tags) > prof.HashtagLimit {
		hidden := len(tags) - prof.HashtagLimit
		tags = tags[:prof.HashtagLimit]
		out.HiddenHashtags = hidden
		out.Optimizations = append(out.Optimizations, fmt.Sprintf("%d %s hidden to stay within the %s limit of %d", hidden, plural(hidden, "hashtag"), p.DisplayName(), prof.HashtagLimit))
	}
	out.Hashtags = append(out.Hashtags, tags...)

	out.CharacterCount = util.RuneLen(out.Content)

	if !prof.SupportsLinks && a.analyzer().Analyze(draft.Caption).HasURL() {
		out.Warnings = append(out.Warnings, fmt.Sprintf("Links are not clickable in %s captions", p.DisplayName()))
		out.Optimizations = append(out.Optimizations, `Move the link to your bio and say "link in bio" instead`)
	}
	return out
}

// AdaptForAllPlatforms renders draft for every platform in declaration order.
func (a *Adapter) AdaptForAllPlatforms(draft model.ContentDraft) []model.PlatformRendering {
	all := platform.All()
	out := make([]model.PlatformRendering, 0, len(all))
	for _, p := range all {
		out = append(out, a.Adapt(draft, p))
	}
	return out
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
