package keywords

import (
	"strings"

	"github.com/coseus/cvbuilder/internal/textutil"
)

// Buckets maps category identifiers to their ordered, deduplicated keyword
// lists. Every category key is always present, possibly empty.
type Buckets map[string][]string

// Categorize routes keywords into the fixed skill categories. Each keyword
// is normalized, then assigned to exactly one category: the first hint list
// (in CategoryOrder) with a bidirectional substring match wins; otherwise
// the fallback chain is tried in its fixed order; otherwise the keyword
// lands in tools. Within a category, keywords are deduplicated
// case-insensitively preserving first-seen order.
func Categorize(kws []string) Buckets {
	buckets := make(Buckets, len(CategoryOrder))
	for _, cat := range CategoryOrder {
		buckets[cat] = []string{}
	}
	seen := make(map[string]map[string]bool)

	for _, raw := range kws {
		kw := NormalizeKeyword(raw)
		if kw == "" || textutil.IsStopWord(kw) {
			continue
		}
		cat := bucketFor(kw)
		if seen[cat] == nil {
			seen[cat] = make(map[string]bool)
		}
		low := strings.ToLower(kw)
		if seen[cat][low] {
			continue
		}
		seen[cat][low] = true
		buckets[cat] = append(buckets[cat], kw)
	}
	return buckets
}

// bucketFor returns the category for a normalized keyword.
func bucketFor(kw string) string {
	for _, cat := range CategoryOrder {
		for _, hint := range categoryHints[cat] {
			if strings.Contains(kw, hint) || strings.Contains(hint, kw) {
				return cat
			}
		}
	}
	for _, fb := range fallbackChain {
		for _, term := range fb.terms {
			if strings.Contains(kw, term) {
				return fb.category
			}
		}
	}
	return CategoryTools
}

// Get returns the bucket for a category, never nil.
func (b Buckets) Get(category string) []string {
	if items, ok := b[category]; ok {
		return items
	}
	return nil
}
