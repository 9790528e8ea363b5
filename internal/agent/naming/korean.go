package naming

const (
	hangulSyllableFirst = '\uAC00' // 가
	hangulSyllableLast  = '\uD7A3' // 힣
)

// IsKorean reports whether text contains at least one precomposed Hangul syllable.
func IsKorean(text string) bool {
	for _, r := range text {
		if r >= hangulSyllableFirst && r <= hangulSyllableLast {
			return true
		}
	}
	return false
}
