package fuzzy

// Score reports how well needle matches haystack, in [ScoreMin, ScoreMax].
// It returns ScoreMin whenever needle or haystack is empty, haystack does
// not contain needle as an in-order (case-insensitive) subsequence, the
// haystack is longer than MatchMaxLen code points, or needle is longer than
// haystack.
//
// slab may be nil, in which case Score allocates its own scratch space; a
// caller scoring many haystacks against the same needle should pass a
// shared *Slab (see NewSlab) to avoid repeated allocation.
func Score(n Needle, haystack string, slab *Slab) Score {
	if n.Len() == 0 || len(haystack) == 0 {
		return ScoreMin
	}

	var hay Haystack
	if !setupHaystack(n, haystack, &hay) {
		return ScoreMin
	}
	hay.precomputeBonus()

	nLen := n.Len()
	mLen := hay.len

	if hay.truncated || mLen > MatchMaxLen || nLen > mLen {
		return ScoreMin
	}
	if nLen == mLen {
		// A same-length subsequence under folding can only be the whole
		// string.
		return ScoreMax
	}

	if slab != nil {
		slab.reset()
	}
	_, M, rowOf := runDP(n, &hay, slab, false)
	return M[rowOf(nLen-1)+mLen-1]
}

// ScoreWithOffset scores haystack[offset:] against needle. The caller is
// responsible for offset being a valid byte index into haystack.
func ScoreWithOffset(n Needle, haystack string, offset int, slab *Slab) Score {
	return Score(n, haystack[offset:], slab)
}
