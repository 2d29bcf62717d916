package suggest

import (
	"fmt"

	"postcraft/internal/model"
	"postcraft/internal/platform"
)

// FromFactors renders one actionable sentence per negative or neutral factor.
// Negative factors come first; order within a group follows factors.
func FromFactors(factors []model.PredictionFactor, prof platform.Profile) []string {
	out := make([]string, 0, len(factors))
	for _, want := range []model.Impact{model.ImpactNegative, model.ImpactNeutral} {
		for _, f := range factors {
			if f.Impact != want {
				continue
			}
			if s := sentence(f, prof); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func sentence(f model.PredictionFactor, prof platform.Profile) string {
	name := prof.Platform.DisplayName()
	switch f.Name {
	case model.FactorCaptionLength:
		if f.Impact == model.ImpactNegative {
			return fmt.Sprintf("Shorten the caption to fit the %d-character %s limit", prof.CaptionLimit, name)
		}
		return fmt.Sprintf("Aim for %d-%d characters in the caption", prof.OptimalCaptionLength.Min, prof.OptimalCaptionLength.Max)
	case model.FactorHashtags:
		if f.Impact == model.ImpactNegative {
			return fmt.Sprintf("Remove hashtags to stay within the %s limit of %d", name, prof.HashtagLimit)
		}
		return fmt.Sprintf("Use %d-%d hashtags on %s", prof.RecommendedHashtags.Min, prof.RecommendedHashtags.Max, name)
	case model.FactorOpening:
		return "Start the caption with a capitalized, attention-grabbing first line"
	case model.FactorQuestion:
		return "Add a question to create a hook"
	case model.FactorNumberLead:
		return "Open with a number or statistic to stop the scroll"
	case model.FactorEmoji:
		return "Add an emoji to make the caption easier to scan"
	case model.FactorCallToAction:
		return "Add a call to action, such as asking readers to comment or share"
	case model.FactorMedia:
		if f.Impact == model.ImpactNegative {
			return fmt.Sprintf("Attach an image or video; %s is a visual-first platform", name)
		}
		return "Consider attaching an image or video"
	}
	return ""
}
