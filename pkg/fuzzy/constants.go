// Package fuzzy implements a fzy-style fuzzy string matching engine: it
// decides whether a needle's characters occur in order inside a haystack,
// scores the quality of that occurrence, and can recover the exact haystack
// positions of the optimal alignment.
package fuzzy

// Score is the real-valued result of matching a needle against a haystack.
type Score float64

// Score bounds and tunable weights. The gap/bonus weights follow the
// classical fzy weight table: small, proportionally related constants. A
// boundary bonus (0.6 to 0.9) is cancelled by the inner-gap penalty (0.01
// per skipped character) once the gap grows past roughly 60 to 90
// characters.
const (
	ScoreMax Score = 100
	ScoreMin Score = -10

	scoreGapLeading  Score = -0.005
	scoreGapTrailing Score = -0.005
	scoreGapInner    Score = -0.01

	scoreMatchConsecutive Score = 1.0

	scoreMatchSlash   Score = 0.9
	scoreMatchWord    Score = 0.8
	scoreMatchCapital Score = 0.7
	scoreMatchDot     Score = 0.6
)

// MatchMaxLen bounds the number of haystack code points considered. Longer
// candidates are not an error; they simply score ScoreMin so that a larger
// search ranks them below anything that fit.
const MatchMaxLen = 512

// InitialCapacity seeds the backing slice of a prepared Needle.
const InitialCapacity = 32
