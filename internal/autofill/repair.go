package autofill

import "strings"

// DefaultRepairMinLength is the shortest token the doubled-glyph repair
// considers. Empirically tuned against PDFs whose extractor emits every
// glyph twice ("JJoohhnn"); kept configurable for recalibration.
const DefaultRepairMinLength = 4

// RepairDoubledGlyphs collapses tokens whose characters are all exactly
// doubled, a known artifact of some PDF text extractors. Tokens shorter
// than minLen, of odd length, or with any unpaired character are left
// untouched.
func RepairDoubledGlyphs(text string, minLen int) string {
	if minLen <= 0 {
		minLen = DefaultRepairMinLength
	}
	var out strings.Builder
	var token strings.Builder
	flush := func() {
		out.WriteString(repairToken(token.String(), minLen))
		token.Reset()
	}
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			flush()
			out.WriteRune(r)
		} else {
			token.WriteRune(r)
		}
	}
	flush()
	return out.String()
}

func repairToken(tok string, minLen int) string {
	runes := []rune(tok)
	if len(runes) < minLen || len(runes)%2 != 0 {
		return tok
	}
	half := make([]rune, 0, len(runes)/2)
	for i := 0; i < len(runes); i += 2 {
		if runes[i] != runes[i+1] {
			return tok
		}
		half = append(half, runes[i])
	}
	// All-same-character tokens ("aaaa") are ambiguous; leave them alone.
	same := true
	for _, r := range half {
		if r != half[0] {
			same = false
			break
		}
	}
	if same {
		return tok
	}
	return string(half)
}
