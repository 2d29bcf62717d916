package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunesKeepsRunesWhole(t *testing.T) {
	s, cut := TruncateRunes("héllo wörld", 4)
	assert.True(t, cut)
	assert.Equal(t, "héll", s)
	assert.Equal(t, 4, RuneLen(s))

	s, cut = TruncateRunes("short", 10)
	assert.False(t, cut)
	assert.Equal(t, "short", s)
}

func TestDedupeHashtags(t *testing.T) {
	got, dups := DedupeHashtags([]string{"#Go", "go", " Cloud ", "", "#", "GO", "cloud", "dev"})
	assert.Equal(t, []string{"go", "cloud", "dev"}, got)
	assert.Equal(t, 3, dups)
}

func TestNormalizeHashtagStripsMixedPrefix(t *testing.T) {
	for in, want := range map[string]string{
		"#Go":        "go",
		"# #launch":  "launch",
		" ## \tAI ": "ai",
		"#":          "",
		"# # ":       "",
	} {
		got := NormalizeHashtag(in)
		if got != want {
			t.Fatalf("NormalizeHashtag(%q) = %q, want %q", in, got, want)
		}
		if again := NormalizeHashtag(got); again != got {
			t.Fatalf("NormalizeHashtag not idempotent on %q: %q", got, again)
		}
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"new", "ai", "tool", "launch"}, Tokenize("New #AI tool: launch!"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, SplitList(" a, ,b c,"))
	assert.Empty(t, SplitList(""))
}

func TestContainsAnyCaseInsensitive(t *testing.T) {
	assert.True(t, ContainsAnyCaseInsensitive("Drop a COMMENT below", []string{"comment"}))
	assert.False(t, ContainsAnyCaseInsensitive("nothing here", []string{"share"}))
}
