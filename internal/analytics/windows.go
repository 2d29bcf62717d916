package analytics

import (
	"sort"
	"time"

	"postcraft/internal/model"
	"postcraft/internal/platform"
)

// Slot is one weekly (day, hour) bucket.
type Slot struct {
	Day  time.Weekday
	Hour int
}

// WindowHeatmap buckets the optimal windows of platforms into weekly slots.
func WindowHeatmap(platforms []platform.Platform) map[Slot][]platform.Platform {
	buckets := make(map[Slot][]platform.Platform)
	for _, p := range platforms {
		for _, w := range p.Profile().Windows {
			k := Slot{Day: w.Day, Hour: w.Hour}
			buckets[k] = append(buckets[k], p)
		}
	}
	return buckets
}

// RankedSlots orders slots by how many platforms share them, then by calendar order.
func RankedSlots(m map[Slot][]platform.Platform) []Slot {
	keys := make([]Slot, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(m[keys[i]]) != len(m[keys[j]]) {
			return len(m[keys[i]]) > len(m[keys[j]])
		}
		if keys[i].Day != keys[j].Day {
			return keys[i].Day < keys[j].Day
		}
		return keys[i].Hour < keys[j].Hour
	})
	return keys
}

// CrossPostSummary condenses a set of renderings for a cross-posting preview.
type CrossPostSummary struct {
	Platforms      int                 `json:"platforms"`
	Truncated      []platform.Platform `json:"truncated"`
	HashtagsHidden []platform.Platform `json:"hashtagsHidden"`
	Warnings       int                 `json:"warnings"`
	Optimizations  int                 `json:"optimizations"`
}

// Summarize counts what the adapter changed across renderings.
func Summarize(rs []model.PlatformRendering) CrossPostSummary {
	s := CrossPostSummary{Platforms: len(rs), Truncated: []platform.Platform{}, HashtagsHidden: []platform.Platform{}}
	for _, r := range rs {
		if r.Truncated {
			s.Truncated = append(s.Truncated, r.Platform)
		}
		if r.HiddenHashtags > 0 {
			s.HashtagsHidden = append(s.HashtagsHidden, r.Platform)
		}
		s.Warnings += len(r.Warnings)
		s.Optimizations += len(r.Optimizations)
	}
	return s
}
