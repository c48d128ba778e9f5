package keywords

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/coseus/cvbuilder/internal/textutil"
)

const (
	// DefaultMaxKeywords caps the ranked keyword list.
	DefaultMaxKeywords = 50
	// DefaultSimilarityThreshold is the near-duplicate merge threshold.
	// Empirically tuned; kept configurable for recalibration.
	DefaultSimilarityThreshold = 0.92

	// phraseWeight is the frequency weight of a Proper-case phrase;
	// plain tokens count tokenWeight each.
	phraseWeight = 2.5
	tokenWeight  = 1.0
)

// Keyword is one ranked extraction result.
type Keyword struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Extractor extracts ranked keywords from job description text. The zero
// value is not usable; use NewExtractor.
type Extractor struct {
	MaxKeywords         int
	SimilarityThreshold float64
}

// NewExtractor returns an Extractor with the default limits.
func NewExtractor() *Extractor {
	return &Extractor{
		MaxKeywords:         DefaultMaxKeywords,
		SimilarityThreshold: DefaultSimilarityThreshold,
	}
}

// techPhraseRe matches Proper-case technical phrases such as "Azure AD" or
// "Windows Server" on the original-case text.
var techPhraseRe = regexp.MustCompile(`[A-Z][A-Za-z0-9+#/.\-]+(?:[ \t][A-Z][A-Za-z0-9+#/.\-]+)*`)

var (
	bulletSepRe  = regexp.MustCompile(`[•]`)
	punctSepRe   = regexp.MustCompile(`[/,;()]`)
	digitsOnlyRe = regexp.MustCompile(`^\d+$`)
)

// NormalizeKeyword lowercases and whitespace-collapses a keyword, then maps
// it through the synonym table.
func NormalizeKeyword(s string) string {
	n := textutil.Normalize(s)
	if canonical, ok := synonyms[n]; ok {
		return canonical
	}
	return n
}

// Extract returns the ranked keyword list for a job description, highest
// score first, truncated to MaxKeywords. Ties keep first-occurrence order.
// Empty input yields an empty list.
func (e *Extractor) Extract(text string) []Keyword {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	scores := make(map[string]float64)
	var order []string
	add := func(key string, weight float64) {
		if key == "" || textutil.IsStopWord(key) || digitsOnlyRe.MatchString(key) {
			return
		}
		if len([]rune(key)) <= 2 {
			return
		}
		if _, seen := scores[key]; !seen {
			order = append(order, key)
		}
		scores[key] += weight
	}

	// Proper-case phrases carry a bonus weight over plain tokens.
	for _, phrase := range techPhraseRe.FindAllString(text, -1) {
		add(NormalizeKeyword(phrase), phraseWeight)
	}

	// Known multi-word terms from the synonym and hint tables also count as
	// phrases even when the posting spells them in lowercase.
	norm := textutil.Normalize(text)
	for _, p := range knownPhrases() {
		if c := strings.Count(norm, p); c > 0 {
			add(NormalizeKeyword(p), phraseWeight*float64(c))
		}
	}

	// Plain tokens from separator-cleaned text.
	clean := bulletSepRe.ReplaceAllString(text, "\n")
	clean = punctSepRe.ReplaceAllString(clean, " ")
	for _, tok := range textutil.Tokenize(clean) {
		add(NormalizeKeyword(tok), tokenWeight)
	}

	ranked := make([]Keyword, 0, len(order))
	for _, k := range order {
		ranked = append(ranked, Keyword{Text: k, Score: scores[k]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	// Merge near-duplicate spellings before the final cut so variants
	// accumulate into one bucket. The first-seen spelling stays canonical.
	if len(ranked) > e.MaxKeywords*2 {
		ranked = ranked[:e.MaxKeywords*2]
	}
	merged := e.mergeNearDuplicates(ranked)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	if len(merged) > e.MaxKeywords {
		merged = merged[:e.MaxKeywords]
	}
	return merged
}

// mergeNearDuplicates folds keywords whose similarity ratio meets the
// threshold into the earlier entry, summing scores.
func (e *Extractor) mergeNearDuplicates(ranked []Keyword) []Keyword {
	merged := make([]Keyword, 0, len(ranked))
	for _, kw := range ranked {
		placed := false
		for i := range merged {
			if textutil.SimilarityRatio(kw.Text, merged[i].Text) >= e.SimilarityThreshold {
				merged[i].Score += kw.Score
				placed = true
				break
			}
		}
		if !placed {
			merged = append(merged, kw)
		}
	}
	return merged
}

var (
	knownPhrasesOnce sync.Once
	knownPhraseList  []string
)

// knownPhrases returns the multi-word terms from the static synonym and hint
// tables, sorted for deterministic iteration.
func knownPhrases() []string {
	knownPhrasesOnce.Do(func() {
		set := make(map[string]bool)
		for k := range synonyms {
			if strings.Contains(k, " ") {
				set[k] = true
			}
		}
		for _, hints := range categoryHints {
			for _, h := range hints {
				if strings.Contains(h, " ") {
					set[h] = true
				}
			}
		}
		for p := range set {
			knownPhraseList = append(knownPhraseList, p)
		}
		sort.Strings(knownPhraseList)
	})
	return knownPhraseList
}

// Extract runs a default-configured Extractor, truncating to maxKeywords
// when it is positive.
func Extract(text string, maxKeywords int) []Keyword {
	e := NewExtractor()
	if maxKeywords > 0 {
		e.MaxKeywords = maxKeywords
	}
	return e.Extract(text)
}

// Texts returns just the keyword strings of a ranked list, in order.
func Texts(ranked []Keyword) []string {
	out := make([]string, len(ranked))
	for i, kw := range ranked {
		out[i] = kw.Text
	}
	return out
}
