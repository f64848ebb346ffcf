package classify

// FoldASCII lower-cases ASCII letters and leaves every other byte
// untouched. Unlike strings.ToLower it preserves byte length, so an
// offset into the folded text indexes the same rune in the original.
// Non-ASCII capitals stay upper-case; the signal patterns are all
// ASCII, so they are unaffected.
func FoldASCII(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
