package recommend

import (
	"testing"

	"postcraft/internal/lexicon"
	"postcraft/internal/platform"
	"postcraft/internal/util"
)

func TestSuggestExcludesExisting(t *testing.T) {
	got := New(10).Suggest("new AI productivity tool", platform.Twitter, []string{"ai"})
	if len(got) == 0 {
		t.Fatalf("expected suggestions")
	}
	for _, tag := range got {
		if tag == "ai" {
			t.Fatalf("existing tag suggested: %v", got)
		}
	}
	if len(got) > platform.Twitter.Profile().HashtagLimit {
		t.Fatalf("more suggestions than Twitter allows: %v", got)
	}
}

func TestSuggestRanksSharedTagsFirst(t *testing.T) {
	// "tech" is reachable from both "ai" and "tools"
	got := New(10).Suggest("AI tools for teams", platform.LinkedIn, nil)
	if len(got) < 2 || got[0] != "tech" || got[1] != "ai" {
		t.Fatalf("unexpected ranking %v", got)
	}
}

func TestSuggestNoMatchIsEmpty(t *testing.T) {
	got := New(10).Suggest("zzz qqq", platform.Instagram, nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestSuggestCaseInsensitiveAndInline(t *testing.T) {
	got := New(10).Suggest("Morning coffee #Barista", platform.Instagram, []string{"#COFFEE"})
	for _, tag := range got {
		if k := util.FoldKey(tag); k == "coffee" || k == "barista" {
			t.Fatalf("should not suggest %s: %v", tag, got)
		}
	}
	if len(got) == 0 || got[0] != "coffeelover" {
		t.Fatalf("expected coffeelover first, got %v", got)
	}
}

func TestSuggestCapsAndAppendsStaples(t *testing.T) {
	got := New(3).Suggest("travel photo", platform.Instagram, nil)
	if len(got) != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	tt := New(10).Suggest("fitness", platform.TikTok, nil)
	if tt[len(tt)-1] != "viral" {
		t.Fatalf("expected TikTok staples at the end, got %v", tt)
	}
}

func TestSuggestForNiche(t *testing.T) {
	got := New(10).SuggestForNiche("big news today", "marketing", platform.LinkedIn, nil)
	if len(got) == 0 || got[0] != "marketing" {
		t.Fatalf("expected niche-driven tags, got %v", got)
	}
}

func TestPhraseKeywords(t *testing.T) {
	got := New(10).Suggest("Machine learning in practice", platform.Facebook, nil)
	if len(got) == 0 || got[0] != "machinelearning" {
		t.Fatalf("expected machinelearning first, got %v", got)
	}
}

func TestSuggestUniqueness(t *testing.T) {
	got := New(30).Suggest("ai llm machine learning artificial coding developer golang", platform.Instagram, nil)
	seen := map[string]bool{}
	for _, g := range got {
		if seen[util.FoldKey(g)] {
			t.Fatalf("duplicate %s in %v", g, got)
		}
		seen[util.FoldKey(g)] = true
	}
}

type noInlineTags struct{ lexicon.Lexical }

func (n noInlineTags) Analyze(s string) lexicon.Signals {
	sig := n.Lexical.Analyze(s)
	sig.InlineHashtags = nil
	return sig
}

func TestSuggestUsesInjectedAnalyzer(t *testing.T) {
	caption := "Morning coffee #coffee"
	for _, tag := range New(10).Suggest(caption, platform.Instagram, nil) {
		if tag == "coffee" {
			t.Fatalf("inline tag suggested with default analyzer")
		}
	}
	got := New(10, WithAnalyzer(noInlineTags{})).Suggest(caption, platform.Instagram, nil)
	found := false
	for _, tag := range got {
		found = found || tag == "coffee"
	}
	if !found {
		t.Fatalf("injected analyzer ignored: %v", got)
	}
}

func TestExistingWithMixedHashPrefixIsExcluded(t *testing.T) {
	for _, tag := range New(10).Suggest("new AI productivity tool", platform.Twitter, []string{"# #ai"}) {
		if tag == "ai" {
			t.Fatalf("existing tag suggested")
		}
	}
}
