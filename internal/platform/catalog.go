package platform

import (
	"fmt"
	"time"
)

// Range is an inclusive [Min, Max] band.
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether v falls inside the band.
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// Window is a weekly high-engagement slot, interpreted in the caller's location.
type Window struct {
	Day  time.Weekday `json:"day"`
	Hour int          `json:"hour"`
}

// Profile holds the fixed limits and recommendations for one platform.
type Profile struct {
	Platform             Platform `json:"platform"`
	CaptionLimit         int      `json:"captionLimit"`
	HashtagLimit         int      `json:"hashtagLimit"`
	RecommendedHashtags  Range    `json:"recommendedHashtags"`
	OptimalCaptionLength Range    `json:"optimalCaptionLength"`
	SupportsLinks        bool     `json:"supportsLinks"`
	SupportsVideo        bool     `json:"supportsVideo"`
	// VisualFirst platforms penalize posts without media.
	VisualFirst bool `json:"visualFirst"`
	// VideoFirst platforms expect video rather than still images.
	VideoFirst bool     `json:"videoFirst"`
	Windows    []Window `json:"windows"`
}

// Profile returns the catalog entry for p. Every declared platform has one;
// an out-of-range value is a programming error and panics.
func (p Platform) Profile() Profile {
	var prof Profile
	switch p {
	case Instagram:
		prof = Profile{
			CaptionLimit:         2200,
			HashtagLimit:         30,
			RecommendedHashtags:  Range{Min: 5, Max: 15},
			OptimalCaptionLength: Range{Min: 100, Max: 300},
			SupportsVideo:        true,
			VisualFirst:          true,
			Windows: []Window{
				{time.Monday, 11}, {time.Tuesday, 10}, {time.Tuesday, 14}, {time.Wednesday, 11},
				{time.Thursday, 14}, {time.Friday, 10}, {time.Saturday, 9}, {time.Sunday, 19},
			},
		}
	case Twitter:
		prof = Profile{
			CaptionLimit:         280,
			HashtagLimit:         5,
			RecommendedHashtags:  Range{Min: 1, Max: 3},
			OptimalCaptionLength: Range{Min: 70, Max: 120},
			SupportsLinks:        true,
			SupportsVideo:        true,
			Windows: []Window{
				{time.Monday, 8}, {time.Tuesday, 9}, {time.Wednesday, 9}, {time.Wednesday, 12},
				{time.Thursday, 9}, {time.Friday, 8},
			},
		}
	case LinkedIn:
		prof = Profile{
			CaptionLimit:         3000,
			HashtagLimit:         5,
			RecommendedHashtags:  Range{Min: 3, Max: 5},
			OptimalCaptionLength: Range{Min: 150, Max: 1300},
			SupportsLinks:        true,
			SupportsVideo:        true,
			Windows: []Window{
				{time.Tuesday, 8}, {time.Tuesday, 12}, {time.Wednesday, 9}, {time.Wednesday, 12},
				{time.Thursday, 10}, {time.Thursday, 17},
			},
		}
	case TikTok:
		prof = Profile{
			CaptionLimit:         150,
			HashtagLimit:         10,
			RecommendedHashtags:  Range{Min: 3, Max: 5},
			OptimalCaptionLength: Range{Min: 50, Max: 150},
			SupportsVideo:        true,
			VisualFirst:          true,
			VideoFirst:           true,
			Windows: []Window{
				{time.Monday, 18}, {time.Tuesday, 9}, {time.Tuesday, 19}, {time.Wednesday, 19},
				{time.Thursday, 12}, {time.Thursday, 19}, {time.Friday, 17}, {time.Saturday, 11},
				{time.Sunday, 20},
			},
		}
	case Facebook:
		prof = Profile{
			CaptionLimit:         63206,
			HashtagLimit:         10,
			RecommendedHashtags:  Range{Min: 1, Max: 3},
			OptimalCaptionLength: Range{Min: 40, Max: 250},
			SupportsLinks:        true,
			SupportsVideo:        true,
			Windows: []Window{
				{time.Monday, 9}, {time.Tuesday, 13}, {time.Wednesday, 11}, {time.Wednesday, 13},
				{time.Thursday, 13}, {time.Friday, 11}, {time.Saturday, 12},
			},
		}
	default:
		panic(fmt.Sprintf("platform: no profile for %s", p))
	}
	prof.Platform = p
	return prof
}

// Catalog returns every profile in platform order.
func Catalog() []Profile {
	out := make([]Profile, 0, count)
	for _, p := range All() {
		out = append(out, p.Profile())
	}
	return out
}
