package fuzzy

// setupHaystack decodes haystack into hay (up to MatchMaxLen code points)
// while simultaneously testing whether needle is a subsequence of it, under
// either raw or folded equality. The scan and the decode are fused into one
// pass so that the scoring kernel never has to re-decode the haystack.
//
// It reports false (with hay left partially populated) on an empty
// haystack, or when the needle could not be found as an in-order
// subsequence before the haystack was exhausted or the length cap reached.
func setupHaystack(n Needle, haystack string, hay *Haystack) bool {
	if len(haystack) == 0 {
		return false
	}

	needleChars := n.chars
	needleFolded := n.folded
	ni := 0

	pos := 0
	i := 0
	for i < len(haystack) && pos < MatchMaxLen {
		r, size := decodeRune(haystack[i:])
		hay.chars[pos] = r
		pos++
		i += size

		if ni < len(needleChars) && (r == needleChars[ni] || r == needleFolded[ni]) {
			ni++
		}
	}
	hay.len = pos
	// The loop above can only stop early (before exhausting haystack) by
	// hitting the MatchMaxLen cap: a genuine signal that the candidate is
	// longer than this engine supports, distinct from the (always-false,
	// since hay.len <= MatchMaxLen by construction) "m > MatchMaxLen"
	// comparison a literal port of the bounded C array would perform.
	hay.truncated = i < len(haystack)

	return ni == len(needleChars)
}

// HasMatch reports whether needle's code points occur, in order and
// case-insensitively, somewhere inside haystack. A zero-length needle or an
// empty haystack is never a match.
func HasMatch(n Needle, haystack string) bool {
	if n.Len() == 0 {
		return false
	}
	var hay Haystack
	return setupHaystack(n, haystack, &hay)
}
