// Package preflight runs the publish-readiness checks for one draft and
// platform. It looks at the unadapted draft so it can flag what the adapter
// would otherwise fix silently.
package preflight

import (
	"fmt"
	"strings"

	"postcraft/internal/lexicon"
	"postcraft/internal/model"
	"postcraft/internal/platform"
	"postcraft/internal/util"
)

// Check ids, in the order they are reported.
const (
	CheckCaptionLength     = "caption-length"
	CheckHashtagCount      = "hashtag-count"
	CheckLinks             = "links"
	CheckMedia             = "media"
	CheckDuplicateHashtags = "duplicate-hashtags"
	CheckEmptyCaption      = "empty-caption"
)

// Validator runs the check battery. The zero value uses the default analyzer.
type Validator struct {
	Analyzer lexicon.Analyzer
}

// New returns a Validator backed by a.
func New(a lexicon.Analyzer) *Validator { return &Validator{Analyzer: a} }

var std = &Validator{}

// Validate runs every check with the default analyzer.
func Validate(draft model.ContentDraft, p platform.Platform, hasImage, hasVideo bool) model.PreflightReport {
	return std.Validate(draft, p, hasImage, hasVideo)
}

// Validate runs every check against draft for p. The report can proceed iff
// no check returned an error.
func (v *Validator) Validate(draft model.ContentDraft, p platform.Platform, hasImage, hasVideo bool) model.PreflightReport {
	prof := p.Profile()
	a := lexicon.Default()
	if v != nil && v.Analyzer != nil {
		a = v.Analyzer
	}
	checks := make([]model.CheckResult, 0, 6)
	checks = append(checks, captionLength(draft, prof), hashtagCount(draft, prof))
	if c, ok := links(draft, prof, a); ok {
		checks = append(checks, c)
	}
	checks = append(checks, media(prof, hasImage, hasVideo), duplicates(draft), emptyCaption(draft))
	return model.NewPreflightReport(p, checks)
}

func captionLength(d model.ContentDraft, prof platform.Profile) model.CheckResult {
	c := model.CheckResult{ID: CheckCaptionLength, Label: "Caption Length"}
	n := util.RuneLen(d.Caption)
	name := prof.Platform.DisplayName()
	switch {
	case n > prof.CaptionLimit:
		c.Status = model.StatusError
		c.Message = fmt.Sprintf("Caption is %d characters; %s allows %d", n, name, prof.CaptionLimit)
	case n < prof.OptimalCaptionLength.Min:
		c.Status = model.StatusWarning
		c.Message = fmt.Sprintf("Caption is %d characters; %s posts perform best with at least %d", n, name, prof.OptimalCaptionLength.Min)
	case n > prof.OptimalCaptionLength.Max:
		c.Status = model.StatusPass
		c.Message = fmt.Sprintf("Caption is within the limit but longer than the optimal %d characters", prof.OptimalCaptionLength.Max)
	default:
		c.Status = model.StatusPass
		c.Message = fmt.Sprintf("Caption length (%d) is in the optimal range", n)
	}
	return c
}

func hashtagCount(d model.ContentDraft, prof platform.Profile) model.CheckResult {
	c := model.CheckResult{ID: CheckHashtagCount, Label: "Hashtag Count"}
	n := 0
	for _, h := range d.Hashtags {
		if util.NormalizeHashtag(h) != "" {
			n++
		}
	}
	rec := prof.RecommendedHashtags
	name := prof.Platform.DisplayName()
	switch {
	case n > prof.HashtagLimit:
		c.Status = model.StatusError
		c.Message = fmt.Sprintf("%d hashtags exceeds the %s limit of %d", n, name, prof.HashtagLimit)
	case n < rec.Min:
		c.Status = model.StatusWarning
		c.Message = fmt.Sprintf("Add hashtags: %s recommends %d-%d, you have %d", name, rec.Min, rec.Max, n)
	case n > rec.Max:
		c.Status = model.StatusWarning
		c.Message = fmt.Sprintf("%d hashtags is above the recommended %d-%d for %s", n, rec.Min, rec.Max, name)
	default:
		c.Status = model.StatusPass
		c.Message = fmt.Sprintf("%d hashtags is in the recommended range", n)
	}
	return c
}

func links(d model.ContentDraft, prof platform.Profile, a lexicon.Analyzer) (model.CheckResult, bool) {
	if !a.Analyze(d.Caption).HasURL() {
		return model.CheckResult{}, false
	}
	c := model.CheckResult{ID: CheckLinks, Label: "Links"}
	if prof.SupportsLinks {
		c.Status = model.StatusPass
		c.Message = "Links are clickable on " + prof.Platform.DisplayName()
	} else {
		c.Status = model.StatusWarning
		c.Message = fmt.Sprintf(`Links are not clickable on %s; use "link in bio"`, prof.Platform.DisplayName())
	}
	return c, true
}

func media(prof platform.Profile, hasImage, hasVideo bool) model.CheckResult {
	c := model.CheckResult{ID: CheckMedia, Label: "Media"}
	if prof.VideoFirst {
		c.Label = "Video Content"
	}
	switch {
	case prof.VideoFirst && !hasVideo:
		c.Status = model.StatusWarning
		c.Message = prof.Platform.DisplayName() + " is a video-first platform; attach a video"
	case !hasImage && !hasVideo:
		c.Status = model.StatusWarning
		c.Message = "Adding media significantly increases engagement"
	default:
		c.Status = model.StatusPass
		c.Message = "Media attached"
	}
	return c
}

func duplicates(d model.ContentDraft) model.CheckResult {
	c := model.CheckResult{ID: CheckDuplicateHashtags, Label: "Duplicate Hashtags"}
	if _, dups := util.DedupeHashtags(d.Hashtags); dups > 0 {
		c.Status = model.StatusWarning
		c.Message = fmt.Sprintf("%d duplicate hashtags will be removed", dups)
		return c
	}
	c.Status = model.StatusPass
	c.Message = "No duplicate hashtags"
	return c
}

func emptyCaption(d model.ContentDraft) model.CheckResult {
	c := model.CheckResult{ID: CheckEmptyCaption, Label: "Caption Present"}
	if strings.TrimSpace(d.Caption) == "" {
		c.Status = model.StatusError
		c.Message = "Caption cannot be empty"
		return c
	}
	c.Status = model.StatusPass
	c.Message = "Caption present"
	return c
}
