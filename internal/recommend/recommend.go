package recommend

import (
	"sort"
	"strings"

	"postcraft/internal/lexicon"
	"postcraft/internal/platform"
	"postcraft/internal/util"
)

// DefaultMax caps the number of suggested hashtags.
const DefaultMax = 10

// Recommender suggests hashtags from a static topical vocabulary.
type Recommender struct {
	max      int
	analyzer lexicon.Analyzer
}

// Option customizes a Recommender.
type Option func(*Recommender)

// WithAnalyzer replaces the analyzer used to find hashtags already inline in a caption.
func WithAnalyzer(a lexicon.Analyzer) Option {
	return func(r *Recommender) {
		if a != nil {
			r.analyzer = a
		}
	}
}

// New returns a Recommender returning at most max tags (DefaultMax when max < 1).
func New(max int, opts ...Option) *Recommender {
	if max < 1 {
		max = DefaultMax
	}
	r := &Recommender{max: max, analyzer: lexicon.Default()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Suggest returns hashtags related to keywords in caption, ranked by how many
// keywords point at them, excluding anything in existing or already inline in
// the caption (case-insensitive). It returns an empty list when nothing matches.
func (r *Recommender) Suggest(caption string, p platform.Platform, existing []string) []string {
	return r.rank(caption, p, existing)
}

// SuggestForNiche is Suggest with the account's niche treated as extra caption text.
func (r *Recommender) SuggestForNiche(caption, niche string, p platform.Platform, existing []string) []string {
	return r.rank(strings.TrimSpace(caption+" "+niche), p, existing)
}

type candidate struct {
	tag   string
	hits  int
	first int
}

func (r *Recommender) rank(text string, p platform.Platform, existing []string) []string {
	limit := r.max
	if hl := p.Profile().HashtagLimit; hl < limit {
		limit = hl
	}
	exclude := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		exclude[util.FoldKey(util.NormalizeHashtag(e))] = struct{}{}
	}
	for _, h := range r.analyzer.Analyze(text).InlineHashtags {
		exclude[util.FoldKey(h)] = struct{}{}
	}

	byTag := make(map[string]*candidate)
	order := 0
	consider := func(kw string) {
		for _, tag := range topics[kw] {
			c, ok := byTag[tag]
			if !ok {
				c = &candidate{tag: tag, first: order}
				byTag[tag] = c
				order++
			}
			c.hits++
		}
	}
	for _, kw := range matchedKeywords(text) {
		consider(kw)
	}
	if len(byTag) == 0 {
		return []string{}
	}

	ranked := make([]*candidate, 0, len(byTag))
	for _, c := range byTag {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].hits != ranked[j].hits {
			return ranked[i].hits > ranked[j].hits
		}
		return ranked[i].first < ranked[j].first
	})

	out := make([]string, 0, limit)
	push := func(tag string) {
		if len(out) >= limit {
			return
		}
		k := util.FoldKey(tag)
		if _, ok := exclude[k]; ok {
			return
		}
		exclude[k] = struct{}{}
		out = append(out, tag)
	}
	for _, c := range ranked {
		push(c.tag)
	}
	for _, tag := range staples[p] {
		push(tag)
	}
	return out
}

// matchedKeywords returns vocabulary keys found in text, in order of first appearance.
func matchedKeywords(text string) []string {
	tokens := util.Tokenize(text)
	joined := " " + strings.Join(tokens, " ") + " "
	type hit struct {
		kw  string
		pos int
	}
	var hits []hit
	for kw := range topics {
		if pos := strings.Index(joined, " "+kw+" "); pos >= 0 {
			hits = append(hits, hit{kw: kw, pos: pos})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].pos != hits[j].pos {
			return hits[i].pos < hits[j].pos
		}
		return hits[i].kw < hits[j].kw
	})
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.kw)
	}
	return out
}
