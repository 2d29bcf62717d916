package model

import (
	"time"

	"postcraft/internal/platform"
)

// ContentDraft is the authored caption, hashtags and media flags for one post.
// The engine only reads drafts.
type ContentDraft struct {
	Caption  string   `json:"caption" yaml:"caption"`
	Hashtags []string `json:"hashtags" yaml:"hashtags"`
	ImageURL string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	HasVideo bool     `json:"hasVideo,omitempty" yaml:"hasVideo,omitempty"`
}

// HasImage reports whether an image is attached.
func (d ContentDraft) HasImage() bool { return d.ImageURL != "" }

// HasMedia reports whether any image or video is attached.
func (d ContentDraft) HasMedia() bool { return d.HasImage() || d.HasVideo }

// PlatformRendering is the adapted form of a draft for one platform.
type PlatformRendering struct {
	Platform       platform.Platform `json:"platform"`
	Content        string            `json:"content"`
	Hashtags       []string          `json:"hashtags"`
	CharacterCount int               `json:"characterCount"`
	MaxCharacters  int               `json:"maxCharacters"`
	Truncated      bool              `json:"truncated"`
	HiddenHashtags int               `json:"hiddenHashtags"`
	Warnings       []string          `json:"warnings"`
	Optimizations  []string          `json:"optimizations"`
}

// AsDraft turns a rendering back into a draft, keeping the media flags of src.
func (r PlatformRendering) AsDraft(src ContentDraft) ContentDraft {
	return ContentDraft{
		Caption:  r.Content,
		Hashtags: append([]string(nil), r.Hashtags...),
		ImageURL: src.ImageURL,
		HasVideo: src.HasVideo,
	}
}

// CheckStatus classifies a preflight check outcome.
type CheckStatus string

const (
	StatusPass    CheckStatus = "pass"
	StatusWarning CheckStatus = "warning"
	StatusError   CheckStatus = "error"
)

// CheckResult is one named preflight judgment.
type CheckResult struct {
	ID      string      `json:"id"`
	Label   string      `json:"label"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
}

// PreflightReport aggregates the checks run against one draft and platform.
type PreflightReport struct {
	Platform   platform.Platform `json:"platform"`
	Checks     []CheckResult     `json:"checks"`
	Passed     int               `json:"passed"`
	Warnings   int               `json:"warnings"`
	Errors     int               `json:"errors"`
	CanProceed bool              `json:"canProceed"`
}

// NewPreflightReport derives the counts and the go/no-go flag from checks.
func NewPreflightReport(p platform.Platform, checks []CheckResult) PreflightReport {
	r := PreflightReport{Platform: p, Checks: checks}
	for _, c := range checks {
		switch c.Status {
		case StatusPass:
			r.Passed++
		case StatusWarning:
			r.Warnings++
		case StatusError:
			r.Errors++
		}
	}
	r.CanProceed = r.Errors == 0
	return r
}

// Check returns the result with the given id.
func (r PreflightReport) Check(id string) (CheckResult, bool) {
	for _, c := range r.Checks {
		if c.ID == id {
			return c, true
		}
	}
	return CheckResult{}, false
}

// Impact is the direction a factor pushes the prediction.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNeutral  Impact = "neutral"
	ImpactNegative Impact = "negative"
)

// PredictionFactor explains one contribution to a score.
type PredictionFactor struct {
	Name        string `json:"name"`
	Impact      Impact `json:"impact"`
	Description string `json:"description"`
}

// ViralPotential is the coarse engagement tier.
type ViralPotential string

const (
	ViralLow    ViralPotential = "low"
	ViralMedium ViralPotential = "medium"
	ViralHigh   ViralPotential = "high"
)

// EngagementPrediction is the predicted performance of a draft on one platform.
type EngagementPrediction struct {
	Platform            platform.Platform  `json:"platform"`
	Score               int                `json:"score"`
	Confidence          int                `json:"confidence"`
	ViralPotential      ViralPotential     `json:"viralPotential"`
	EstimatedReach      int                `json:"estimatedReach"`
	EstimatedEngagement int                `json:"estimatedEngagement"`
	Factors             []PredictionFactor `json:"factors"`
	BestTimeToPost      time.Time          `json:"bestTimeToPost"`
	Suggestions         []string           `json:"suggestions"`
}

// Factor names reported by the engagement predictor.
const (
	FactorCaptionLength = "Caption Length"
	FactorHashtags      = "Hashtags"
	FactorOpening       = "Strong Opening"
	FactorQuestion      = "Question or Exclamation"
	FactorNumberLead    = "Number Lead"
	FactorEmoji         = "Emoji"
	FactorCallToAction  = "Call to Action"
	FactorMedia         = "Media"
)
