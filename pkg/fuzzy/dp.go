package fuzzy

// runDP fills the D/M matrices of the core recurrence: D[i][j] is the best
// score for an alignment of needle[0..=i] into haystack[0..=j] that ends
// with a match at j; M[i][j] is the best score for any alignment up to
// (i, j). When keepAll is false only two rolling rows are kept (the
// scoring path); when true, the full n*m matrices are kept so Positions can
// backtrace through them. Both paths share this one forward pass, per the
// "retain all rows" switch called for by the design notes.
func runDP(n Needle, hay *Haystack, slab *Slab, keepAll bool) (D, M []Score, rowOf func(i int) int) {
	rows := n.Len()
	m := hay.len

	if keepAll {
		D = slab.allocMatrix(rows * m)
		M = slab.allocMatrix(rows * m)
		rowOf = func(i int) int { return i * m }
	} else {
		D = slab.allocRow(2 * m)
		M = slab.allocRow(2 * m)
		rowOf = func(i int) int { return (i % 2) * m }
	}

	matchFirstRow(n, hay, D[rowOf(0):rowOf(0)+m], M[rowOf(0):rowOf(0)+m])

	for i := 1; i < rows; i++ {
		lastOff := rowOf(i - 1)
		currOff := rowOf(i)
		matchRow(n, hay, i,
			D[currOff:currOff+m], M[currOff:currOff+m],
			D[lastOff:lastOff+m], M[lastOff:lastOff+m])
	}

	return D, M, rowOf
}

// matchFirstRow handles needle row 0, the only row where a match's score is
// anchored to the leading-gap weight instead of a diagonal lookup.
func matchFirstRow(n Needle, hay *Haystack, currD, currM []Score) {
	m := hay.len
	needleChar := n.chars[0]
	needleUpper := n.folded[0]

	gapScore := scoreGapInner
	if n.Len() == 1 {
		gapScore = scoreGapTrailing
	}

	prev := ScoreMin
	for j := 0; j < m; j++ {
		if hay.chars[j] == needleChar || hay.chars[j] == needleUpper {
			score := Score(j)*scoreGapLeading + hay.bonus[j]
			currD[j] = score
			prev = max2(score, prev+gapScore)
			currM[j] = prev
		} else {
			currD[j] = ScoreMin
			prev = prev + gapScore
			currM[j] = prev
		}
	}
}

// matchRow handles needle row i >= 1, consulting the previous row's D/M at
// the diagonal (for consecutive-match bonuses) and the current row's left
// neighbor (for gaps).
func matchRow(n Needle, hay *Haystack, row int, currD, currM, lastD, lastM []Score) {
	m := hay.len
	needleChar := n.chars[row]
	needleUpper := n.folded[row]

	gapScore := scoreGapInner
	if row == n.Len()-1 {
		gapScore = scoreGapTrailing
	}

	currD[0] = ScoreMin
	prev := ScoreMin + gapScore
	currM[0] = prev

	for j := 1; j < m; j++ {
		score := ScoreMin
		if hay.chars[j] == needleChar || hay.chars[j] == needleUpper {
			score = max2(lastM[j-1]+hay.bonus[j], lastD[j-1]+scoreMatchConsecutive)
		}
		currD[j] = score
		prev = max2(score, prev+gapScore)
		currM[j] = prev
	}
}

func max2(a, b Score) Score {
	if a > b {
		return a
	}
	return b
}
