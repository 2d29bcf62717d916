package engine

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postcraft/internal/config"
	"postcraft/internal/lexicon"
	"postcraft/internal/model"
	"postcraft/internal/platform"
	"postcraft/internal/preflight"
)

var now = time.Date(2025, 1, 6, 10, 30, 0, 0, time.UTC)

func newEngine(opts ...Option) *Engine {
	return New(config.Default(), append([]Option{WithClock(func() time.Time { return now })}, opts...)...)
}

func TestAnalyzeCombinesComponents(t *testing.T) {
	d := model.ContentDraft{Caption: strings.Repeat("a", 300), Hashtags: []string{"a", "b", "c", "d", "e", "f", "g"}}
	a := newEngine().Analyze(d, platform.Twitter, false, false)
	assert.Equal(t, 280, a.Rendering.CharacterCount)
	assert.Len(t, a.Rendering.Hashtags, 5)
	assert.False(t, a.Preflight.CanProceed)
	assert.Equal(t, 2, a.Preflight.Errors)
	assert.True(t, a.Prediction.BestTimeToPost.After(now))
}

func TestSuggestSkipsExistingTag(t *testing.T) {
	got := newEngine().Suggest("new AI productivity tool", platform.Twitter, []string{"ai"})
	assert.NotContains(t, got, "ai")
	assert.NotEmpty(t, got)
}

func TestNextOptimalTime(t *testing.T) {
	got := newEngine().NextOptimalTime(platform.Instagram, now)
	assert.Equal(t, time.Date(2025, 1, 6, 11, 0, 0, 0, time.UTC), got)
}

type linkBlind struct{ lexicon.Lexical }

func (l linkBlind) Analyze(s string) lexicon.Signals {
	sig := l.Lexical.Analyze(s)
	sig.URLs = nil
	return sig
}

func TestAnalyzerIsSharedByComponents(t *testing.T) {
	d := model.ContentDraft{Caption: "Visit https://example.com today"}
	e := newEngine(WithAnalyzer(linkBlind{}))
	assert.Empty(t, e.Adapt(d, platform.Instagram).Warnings)
	_, ok := e.Validate(d, platform.Instagram, true, false).Check(preflight.CheckLinks)
	assert.False(t, ok)
}

func TestConcurrentCallsAreIndependent(t *testing.T) {
	e := newEngine()
	d := model.ContentDraft{Caption: "Big launch today! Comment below", Hashtags: []string{"launch", "startup"}, HasVideo: true}
	want := e.Predict(d, platform.LinkedIn)
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := e.Predict(d, platform.LinkedIn); got.Score != want.Score {
				errs <- "score drift"
			}
			_ = e.AdaptForAllPlatforms(d)
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		require.Fail(t, msg)
	}
}

type tagBlind struct{ lexicon.Lexical }

func (l tagBlind) Analyze(s string) lexicon.Signals {
	sig := l.Lexical.Analyze(s)
	sig.InlineHashtags = nil
	return sig
}

func TestAnalyzerReachesRecommender(t *testing.T) {
	caption := "Morning coffee #coffee"
	assert.NotContains(t, newEngine().Suggest(caption, platform.Instagram, nil), "coffee")
	assert.Contains(t, newEngine(WithAnalyzer(tagBlind{})).Suggest(caption, platform.Instagram, nil), "coffee")
}
