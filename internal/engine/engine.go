// Package engine wires the adaptation, validation, prediction, scheduling and
// hashtag components behind one value that callers share. Every method is a
// pure function of its arguments and safe to call concurrently.
package engine

import (
	"time"

	"postcraft/internal/adapt"
	"postcraft/internal/config"
	"postcraft/internal/lexicon"
	"postcraft/internal/model"
	"postcraft/internal/platform"
	"postcraft/internal/predict"
	"postcraft/internal/preflight"
	"postcraft/internal/recommend"
	"postcraft/internal/schedule"
)

// Engine is the content adaptation and performance prediction engine.
type Engine struct {
	adapter     *adapt.Adapter
	validator   *preflight.Validator
	predictor   *predict.Predictor
	recommender *recommend.Recommender
	now         func() time.Time
}

// Option customizes an Engine.
type Option func(*options)

type options struct {
	analyzer lexicon.Analyzer
	now      func() time.Time
}

// WithAnalyzer swaps the lexical analyzer used by every component.
func WithAnalyzer(a lexicon.Analyzer) Option { return func(o *options) { o.analyzer = a } }

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

// New builds an Engine from configuration.
func New(cfg config.Config, opts ...Option) *Engine {
	o := options{analyzer: lexicon.Default(), now: time.Now}
	for _, fn := range opts {
		fn(&o)
	}
	return &Engine{
		adapter:     adapt.New(o.analyzer),
		validator:   preflight.New(o.analyzer),
		predictor:   predict.New(cfg.Prediction, predict.WithAnalyzer(o.analyzer), predict.WithClock(o.now)),
		recommender: recommend.New(cfg.Recommend.MaxSuggestions, recommend.WithAnalyzer(o.analyzer)),
		now:         o.now,
	}
}

func (e *Engine) Adapt(d model.ContentDraft, p platform.Platform) model.PlatformRendering {
	return e.adapter.Adapt(d, p)
}

func (e *Engine) AdaptForAllPlatforms(d model.ContentDraft) []model.PlatformRendering {
	return e.adapter.AdaptForAllPlatforms(d)
}

func (e *Engine) Validate(d model.ContentDraft, p platform.Platform, hasImage, hasVideo bool) model.PreflightReport {
	return e.validator.Validate(d, p, hasImage, hasVideo)
}

func (e *Engine) Predict(d model.ContentDraft, p platform.Platform) model.EngagementPrediction {
	return e.predictor.Predict(d, p)
}

func (e *Engine) NextOptimalTime(p platform.Platform, now time.Time) time.Time {
	return schedule.NextOptimalTime(p, now)
}

func (e *Engine) Suggest(caption string, p platform.Platform, existing []string) []string {
	return e.recommender.Suggest(caption, p, existing)
}

// SuggestForNiche folds the account niche into the hashtag lookup.
func (e *Engine) SuggestForNiche(caption, niche string, p platform.Platform, existing []string) []string {
	return e.recommender.SuggestForNiche(caption, niche, p, existing)
}

// Analysis is everything the authoring view shows for one draft and platform.
type Analysis struct {
	Rendering  model.PlatformRendering    `json:"rendering"`
	Preflight  model.PreflightReport      `json:"preflight"`
	Prediction model.EngagementPrediction `json:"prediction"`
	Hashtags   []string                   `json:"suggestedHashtags"`
}

// Analyze runs the adapter, preflight, predictor and recommender for one platform.
// Preflight sees the unadapted draft.
func (e *Engine) Analyze(d model.ContentDraft, p platform.Platform, hasImage, hasVideo bool) Analysis {
	return Analysis{
		Rendering:  e.Adapt(d, p),
		Preflight:  e.Validate(d, p, hasImage, hasVideo),
		Prediction: e.Predict(d, p),
		Hashtags:   e.Suggest(d.Caption, p, d.Hashtags),
	}
}
