package fuzzy

// Positions runs the same recurrence as Score, but keeps the full D/M
// matrices and backtraces them to recover the haystack column index matched
// by each needle character, writing them into positions (which must have
// length >= n.Len()). It has no equal-length shortcut: when needle and
// haystack have the same length it returns the recurrence's score rather
// than ScoreMax. Entries are code-point column indices, not byte
// offsets; callers mapping back to bytes must re-decode the haystack.
//
// If haystack does not actually contain needle as a subsequence, the
// returned positions are unspecified (the size guards below still apply).
// Callers are expected to have already confirmed a match with HasMatch or
// Score before calling Positions, exactly as the underlying recurrence
// does not itself re-check subsequence containment here.
func Positions(n Needle, haystack string, positions []int, slab *Slab) Score {
	if n.Len() == 0 {
		return ScoreMin
	}

	var hay Haystack
	setupHaystack(n, haystack, &hay)
	hay.precomputeBonus()

	nLen := n.Len()
	mLen := hay.len

	if hay.truncated || mLen > MatchMaxLen || nLen > mLen {
		return ScoreMin
	}

	if slab != nil {
		slab.reset()
	}
	D, M, rowOf := runDP(n, &hay, slab, true)

	matchRequired := false
	j := mLen - 1
	for i := nLen - 1; i >= 0; i-- {
		for ; j >= 0; j-- {
			dij := D[rowOf(i)+j]
			mij := M[rowOf(i)+j]
			if dij > ScoreMin && (matchRequired || dij == mij) {
				matchRequired = i > 0 && j > 0 && mij == D[rowOf(i-1)+j-1]+scoreMatchConsecutive
				positions[i] = j
				j--
				break
			}
		}
	}

	return M[rowOf(nLen-1)+mLen-1]
}
