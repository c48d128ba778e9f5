// Package textutil provides the shared text-cleaning primitives used by the
// keyword extractor, the scoring engine and the autofill pipeline: whitespace
// normalization, technical tokenization and sentence/bullet splitting.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const minTokenLen = 3

// stopWords is a deliberately short English stopword set. Keeping it small
// avoids filtering out short technical terms.
var stopWords = map[string]bool{
	"and": true, "or": true, "the": true, "a": true, "an": true, "to": true,
	"of": true, "in": true, "on": true, "for": true, "with": true, "as": true,
	"at": true, "by": true, "from": true, "is": true, "are": true, "be": true,
	"been": true, "being": true, "this": true, "that": true, "these": true,
	"those": true, "you": true, "we": true, "they": true, "our": true,
	"your": true, "their": true, "will": true, "can": true, "may": true,
	"must": true, "should": true, "etc": true, "responsible": true,
	"responsibilities": true, "requirements": true, "preferred": true,
	"nice": true, "plus": true, "minimum": true, "basic": true,
	"strong": true, "experience": true, "knowledge": true, "skills": true,
	"ability": true,
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize lowercases s, collapses whitespace runs to single spaces and
// trims leading/trailing space. Empty input yields "".
func Normalize(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(strings.ToLower(s)), " ")
}

// IsStopWord reports whether w (already lowercased) is in the stopword set.
func IsStopWord(w string) bool {
	return stopWords[w]
}

// isTokenRune reports whether r may appear inside a technical token.
// Keeping + # . - / intact preserves terms like "C++", "Node.js" and "CI/CD".
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == '+' || r == '#' || r == '.' || r == '-' || r == '/'
}

// Tokenize extracts lowercase technical tokens from text, dropping tokens
// shorter than three characters and stopwords. Tokens must start with a
// letter so stray punctuation runs never survive.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		first, _ := utf8.DecodeRuneInString(w)
		if w == "" || !unicode.IsLetter(first) {
			return
		}
		if len([]rune(w)) >= minTokenLen && !stopWords[w] {
			tokens = append(tokens, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		if isTokenRune(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

var sentenceRe = regexp.MustCompile(`\.\s+`)

// SplitSentences splits text on sentence boundaries and returns trimmed
// sentences with their trailing period removed. Empty parts are dropped.
func SplitSentences(text string) []string {
	var out []string
	for _, part := range sentenceRe.Split(text, -1) {
		part = strings.TrimSuffix(strings.TrimSpace(part), ".")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SplitBullets splits text on newlines, strips leading bullet markers and
// returns the non-empty lines.
func SplitBullets(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-•*·")
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// SimilarityRatio computes a difflib-style similarity ratio between a and b:
// twice the total length of all matching blocks divided by the combined
// length. 1.0 means identical, 0.0 means no common characters.
func SimilarityRatio(a, b string) float64 {
	if a == b {
		if a == "" {
			return 1.0
		}
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	matched := matchingBlocksTotal([]rune(a), []rune(b))
	return 2.0 * float64(matched) / float64(len([]rune(a))+len([]rune(b)))
}

// matchingBlocksTotal sums the lengths of matching blocks found by
// recursively taking the longest common substring, as difflib does.
func matchingBlocksTotal(a, b []rune) int {
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingBlocksTotal(a[:ai], b[:bi])
	total += matchingBlocksTotal(a[ai+size:], b[bi+size:])
	return total
}

// longestCommonSubstring returns the start indices and length of the longest
// run of runes common to a and b.
func longestCommonSubstring(a, b []rune) (ai, bi, size int) {
	// lengths[j] holds the match length ending at a[i-1], b[j-1].
	lengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := lengths[j]
			if a[i-1] == b[j-1] {
				lengths[j] = prev + 1
				if lengths[j] > size {
					size = lengths[j]
					ai = i - size
					bi = j - size
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}
