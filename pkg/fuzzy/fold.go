package fuzzy

// foldUpper maps a code point to its "uppercase" equivalent under a narrow,
// fixed table. It deliberately does not consult unicode.ToUpper: there is no
// locale dependence and no normalization here, only the three ranges below.
//
// Known anomalies, preserved intentionally (see DESIGN.md):
//   - U+00FF (y with diaeresis) falls outside the U+00E0..U+00FE range and is
//     therefore left unfolded.
//   - U+00DF (sharp s) is explicitly excluded from the shift applied to its
//     neighbors and maps to itself.
//   - The Latin Extended-A rule folds every *odd* code point to the
//     preceding even one, which matches that block's paired-case layout but
//     does not special-case the block's few exceptions (e.g. U+0130/U+0131).
func foldUpper(r rune) rune {
	switch {
	case r >= 0x0061 && r <= 0x007A: // ASCII lowercase
		return r - 32
	case r >= 0x00E0 && r <= 0x00FE && r != 0x00F7: // Latin-1 Supplement
		if r == 0x00DF {
			return r
		}
		return r - 32
	case r >= 0x0101 && r <= 0x017F && r%2 == 1: // Latin Extended-A
		return r - 1
	default:
		return r
	}
}

// FoldString applies foldUpper to every code point of s, decoding with the
// same lead-byte table PrepareNeedle uses to build Needle.folded. Callers
// that need a case-insensitive comparison key for a raw string (outside of
// a prepared Needle) use this instead of reimplementing the fold table.
func FoldString(s string) string {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := decodeRune(s[i:])
		out = append(out, foldUpper(r))
		i += size
	}
	return string(out)
}
