// Package predict scores a draft's expected engagement on one platform.
//
// The score is a weighted sum of independent signals (caption fit, hashtag
// fit, hooks, emoji, call to action, media) clamped to [0,100]. Weights and
// reach baselines come from config and are illustrative, not calibrated. The
// result depends only on the draft, the platform and the supplied clock.
package predict

import (
	"fmt"
	"time"

	"postcraft/internal/config"
	"postcraft/internal/lexicon"
	"postcraft/internal/model"
	"postcraft/internal/platform"
	"postcraft/internal/schedule"
	"postcraft/internal/suggest"
	"postcraft/internal/util"
)

const maxConfidence = 95

// Predictor computes engagement predictions. It is safe for concurrent use.
type Predictor struct {
	cfg      config.PredictionConfig
	analyzer lexicon.Analyzer
	now      func() time.Time
}

// Option customizes a Predictor.
type Option func(*Predictor)

// WithAnalyzer replaces the lexical analyzer.
func WithAnalyzer(a lexicon.Analyzer) Option { return func(p *Predictor) { p.analyzer = a } }

// WithClock replaces time.Now for the best-time-to-post lookup.
func WithClock(now func() time.Time) Option { return func(p *Predictor) { p.now = now } }

// New returns a Predictor using cfg weights.
func New(cfg config.PredictionConfig, opts ...Option) *Predictor {
	p := &Predictor{cfg: cfg, analyzer: lexicon.Default(), now: time.Now}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Predict scores draft for plat using the predictor's clock.
func (p *Predictor) Predict(draft model.ContentDraft, plat platform.Platform) model.EngagementPrediction {
	return p.PredictAt(draft, plat, p.now())
}

// PredictAt scores draft for plat, scheduling relative to now.
func (p *Predictor) PredictAt(draft model.ContentDraft, plat platform.Platform, now time.Time) model.EngagementPrediction {
	prof := plat.Profile()
	w := p.cfg.Weights
	sig := p.analyzer.Analyze(draft.Caption)

	total := w.Base
	factors := make([]model.PredictionFactor, 0, 8)
	add := func(points float64, f model.PredictionFactor) {
		total += points
		factors = append(factors, f)
	}

	add(captionFit(util.RuneLen(draft.Caption), prof, w))
	tags, _ := util.DedupeHashtags(draft.Hashtags)
	add(hashtagFit(len(tags), prof, w))

	add(signal(sig.StartsWithCapital, w.Hook, model.FactorOpening,
		"Opens with a capitalized first line", "Caption does not open with a capitalized hook"))
	add(signal(sig.HasQuestion || sig.HasExclamation, w.Hook, model.FactorQuestion,
		"Question or exclamation invites a reaction", "No question or exclamation to hook readers"))
	add(signal(sig.OpensWithNumber, w.Hook, model.FactorNumberLead,
		"Opens with a number", "Does not lead with a number or statistic"))
	add(signal(sig.HasEmoji, w.Emoji, model.FactorEmoji,
		"Uses emoji", "No emoji"))
	add(signal(sig.HasCallToAction, w.CallToAction, model.FactorCallToAction,
		"Includes a call to action", "No call to action"))
	add(mediaFit(draft.HasMedia(), prof, w))

	score := model.ClampScore(total, 0, 100)
	reach, engagement := p.Estimate(score, plat)
	return model.EngagementPrediction{
		Platform:            plat,
		Score:               score,
		Confidence:          confidence(factors),
		ViralPotential:      model.ViralTier(score),
		EstimatedReach:      reach,
		EstimatedEngagement: engagement,
		Factors:             factors,
		BestTimeToPost:      schedule.NextOptimalTime(plat, now),
		Suggestions:         suggest.FromFactors(factors, prof),
	}
}

// Estimate converts a score into illustrative reach and engagement counts.
// Reach strictly increases with score for a fixed platform.
func (p *Predictor) Estimate(score int, plat platform.Platform) (reach, engagement int) {
	b := p.cfg.Baseline(plat)
	base := b.Baseline
	if base < 10 {
		base = 10
	}
	if score < 0 {
		score = 0
	}
	reach = base * (score + 10) / 10
	engagement = int(float64(reach) * b.EngagementRate * float64(50+score) / 100)
	if engagement < 0 {
		engagement = 0
	}
	return reach, engagement
}

func captionFit(n int, prof platform.Profile, w config.Weights) (float64, model.PredictionFactor) {
	f := model.PredictionFactor{Name: model.FactorCaptionLength}
	band := prof.OptimalCaptionLength
	switch {
	case n > prof.CaptionLimit:
		f.Impact = model.ImpactNegative
		f.Description = fmt.Sprintf("%d characters exceeds the %d limit", n, prof.CaptionLimit)
		return -w.OverLimit, f
	case band.Contains(n):
		f.Impact = model.ImpactPositive
		f.Description = fmt.Sprintf("%d characters is in the optimal %d-%d range", n, band.Min, band.Max)
		return w.CaptionFit, f
	case n < band.Min:
		f.Impact = model.ImpactNeutral
		f.Description = fmt.Sprintf("%d characters is shorter than the optimal %d-%d", n, band.Min, band.Max)
		return w.CaptionFit * float64(n) / float64(band.Min), f
	default:
		f.Impact = model.ImpactNeutral
		f.Description = fmt.Sprintf("%d characters is longer than the optimal %d-%d", n, band.Min, band.Max)
		span := prof.CaptionLimit - band.Max
		if span <= 0 {
			return 0, f
		}
		return w.CaptionFit * float64(prof.CaptionLimit-n) / float64(span), f
	}
}

func hashtagFit(k int, prof platform.Profile, w config.Weights) (float64, model.PredictionFactor) {
	f := model.PredictionFactor{Name: model.FactorHashtags}
	rec := prof.RecommendedHashtags
	switch {
	case k > prof.HashtagLimit:
		f.Impact = model.ImpactNegative
		f.Description = fmt.Sprintf("%d hashtags exceeds the limit of %d", k, prof.HashtagLimit)
		return -w.OverLimit, f
	case rec.Contains(k):
		f.Impact = model.ImpactPositive
		f.Description = fmt.Sprintf("%d hashtags is in the recommended %d-%d range", k, rec.Min, rec.Max)
		return w.HashtagFit, f
	case k < rec.Min:
		f.Impact = model.ImpactNeutral
		f.Description = fmt.Sprintf("%d hashtags is below the recommended %d-%d", k, rec.Min, rec.Max)
		return w.HashtagFit * float64(k) / float64(rec.Min), f
	default:
		f.Impact = model.ImpactNeutral
		f.Description = fmt.Sprintf("%d hashtags is above the recommended %d-%d", k, rec.Min, rec.Max)
		return w.HashtagFit * float64(prof.HashtagLimit-k+1) / float64(prof.HashtagLimit-rec.Max+1), f
	}
}

func signal(present bool, points float64, name, yes, no string) (float64, model.PredictionFactor) {
	if present {
		return points, model.PredictionFactor{Name: name, Impact: model.ImpactPositive, Description: yes}
	}
	return 0, model.PredictionFactor{Name: name, Impact: model.ImpactNeutral, Description: no}
}

func mediaFit(hasMedia bool, prof platform.Profile, w config.Weights) (float64, model.PredictionFactor) {
	f := model.PredictionFactor{Name: model.FactorMedia}
	switch {
	case hasMedia:
		f.Impact = model.ImpactPositive
		f.Description = "Image or video attached"
		return w.Media, f
	case prof.VisualFirst:
		f.Impact = model.ImpactNegative
		f.Description = prof.Platform.DisplayName() + " is visual-first and the post has no media"
		return -w.MissingMedia, f
	default:
		f.Impact = model.ImpactNeutral
		f.Description = "No media attached"
		return 0, f
	}
}

// confidence grows with the number of signals that produced evidence either way.
func confidence(factors []model.PredictionFactor) int {
	evidence := 0
	for _, f := range factors {
		if f.Impact != model.ImpactNeutral {
			evidence++
		}
	}
	return model.ClampScore(float64(30+7*evidence), 0, maxConfidence)
}
