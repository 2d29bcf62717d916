package analytics

import (
	"strings"
	"testing"
	"time"

	"postcraft/internal/adapt"
	"postcraft/internal/model"
	"postcraft/internal/platform"
)

func TestWindowHeatmapCountsSharedSlots(t *testing.T) {
	m := WindowHeatmap([]platform.Platform{platform.Twitter, platform.LinkedIn})
	shared := m[Slot{Day: time.Wednesday, Hour: 9}]
	if len(shared) != 2 {
		t.Fatalf("expected Twitter and LinkedIn at Wed 09:00, got %v", shared)
	}
	keys := RankedSlots(m)
	if len(m[keys[0]]) != 2 {
		t.Fatalf("shared slot should rank first, got %v", keys[0])
	}
	for i := 1; i < len(keys); i++ {
		if len(m[keys[i]]) > len(m[keys[i-1]]) {
			t.Fatalf("slots not ranked: %v", keys)
		}
	}
}

func TestRankedSlotsCalendarTieBreak(t *testing.T) {
	keys := RankedSlots(WindowHeatmap([]platform.Platform{platform.Twitter}))
	for i := 1; i < len(keys); i++ {
		a, b := keys[i-1], keys[i]
		if a.Day > b.Day || (a.Day == b.Day && a.Hour > b.Hour) {
			t.Fatalf("not calendar ordered: %v", keys)
		}
	}
}

func TestSummarize(t *testing.T) {
	tags := make([]string, 12)
	for i := range tags {
		tags[i] = strings.Repeat("t", i+1)
	}
	d := model.ContentDraft{Caption: strings.Repeat("a", 200), Hashtags: tags}
	s := Summarize(adapt.AdaptForAllPlatforms(d))
	if s.Platforms != 5 {
		t.Fatalf("platforms: %d", s.Platforms)
	}
	if len(s.Truncated) != 1 || s.Truncated[0] != platform.TikTok {
		t.Fatalf("truncated: %v", s.Truncated)
	}
	// 12 tags: over Twitter (5), LinkedIn (5), TikTok (10), Facebook (10)
	if len(s.HashtagsHidden) != 4 {
		t.Fatalf("hidden: %v", s.HashtagsHidden)
	}
	if s.Warnings < 1 || s.Optimizations < 4 {
		t.Fatalf("unexpected counts %+v", s)
	}
}
