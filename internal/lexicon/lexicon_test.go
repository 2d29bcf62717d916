package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeHooks(t *testing.T) {
	s := Default().Analyze("  5 ways to ship faster? Try this! 🚀")
	assert.True(t, s.OpensWithNumber)
	assert.False(t, s.StartsWithCapital)
	assert.True(t, s.HasQuestion)
	assert.True(t, s.HasExclamation)
	assert.True(t, s.HasEmoji)
	assert.Equal(t, 8, s.Words)

	s = Default().Analyze("Quiet morning at the studio")
	assert.True(t, s.StartsWithCapital)
	assert.False(t, s.HasQuestion || s.HasExclamation || s.HasEmoji || s.HasCallToAction)
}

func TestAnalyzeLinksAndCallToAction(t *testing.T) {
	s := Default().Analyze("Read more at https://example.com/post?id=1 and www.example.org")
	assert.Equal(t, []string{"https://example.com/post?id=1", "www.example.org"}, s.URLs)
	assert.True(t, s.HasURL())
	assert.True(t, ContainsURL("see http://a.io"))
	assert.False(t, ContainsURL("no links here"))

	s = Default().Analyze("Drop a comment and share with a friend")
	assert.True(t, s.HasCallToAction)
	assert.False(t, s.HasURL())
}

func TestAnalyzeInlineHashtagsIgnoresURLFragments(t *testing.T) {
	s := Default().Analyze("Launch day #Go #cloud see https://x.io/#anchor")
	assert.Equal(t, []string{"go", "cloud"}, s.InlineHashtags)
}

func TestAnalyzeEmpty(t *testing.T) {
	assert.Equal(t, Signals{}, Default().Analyze("   "))
}
