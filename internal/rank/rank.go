// Package rank implements the candidate ranking layer the core scoring
// engine (fzmatch/pkg/fuzzy) explicitly treats as an external collaborator:
// given one needle and many haystacks, it fans the scoring kernel out
// across a worker pool, merges the partial results, and returns them sorted
// best-first.
package rank

import (
	"runtime"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"fzmatch/internal/applog"
	"fzmatch/pkg/fuzzy"
)

// Candidate is one scored haystack.
type Candidate struct {
	Index     int // position in the original candidate list
	Text      string
	Score     fuzzy.Score
	Positions []int // nil unless Options.WithPositions was set
}

// Options configures a ranking run.
type Options struct {
	// Workers is the number of scoring goroutines. Zero means
	// runtime.NumCPU().
	Workers int
	// WithPositions additionally backtraces matched positions for every
	// candidate that scores above fuzzy.ScoreMin.
	WithPositions bool
	// IncludeNonMatches keeps candidates scoring fuzzy.ScoreMin in the
	// result instead of dropping them.
	IncludeNonMatches bool
}

// Rank scores every candidate against needle concurrently and returns them
// sorted by score descending (ties keep their original relative order).
func Rank(needle fuzzy.Needle, candidates []string, opts Options) []Candidate {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(candidates) && len(candidates) > 0 {
		workers = len(candidates)
	}

	results := make([]Candidate, len(candidates))
	if len(candidates) == 0 {
		return results
	}

	box := newEventBox()
	var mu sync.Mutex
	done := 0

	shard := (len(candidates) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * shard
		end := start + shard
		if start >= len(candidates) {
			mu.Lock()
			done++
			if done == workers {
				box.set(evtAllDone, nil)
			}
			mu.Unlock()
			continue
		}
		if end > len(candidates) {
			end = len(candidates)
		}

		go func(start, end int) {
			slab := fuzzy.NewSlab(opts.WithPositions)
			for i := start; i < end; i++ {
				results[i] = scoreOne(needle, candidates[i], i, slab, opts)
			}

			mu.Lock()
			done++
			allDone := done == workers
			mu.Unlock()
			if allDone {
				box.set(evtAllDone, nil)
			} else {
				box.set(evtShardDone, done)
			}
		}(start, end)
	}

	for {
		finished := false
		box.wait(func(evts events) {
			if _, ok := evts[evtAllDone]; ok {
				finished = true
			}
			evts.clear()
		})
		if finished {
			break
		}
	}

	if !opts.IncludeNonMatches {
		results = filterMatches(results)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// scoreOne scores a single candidate, recovering from (and logging) any
// panic so that one malformed candidate cannot abort the whole shard.
func scoreOne(needle fuzzy.Needle, text string, index int, slab *fuzzy.Slab, opts Options) (c Candidate) {
	c = Candidate{Index: index, Text: text, Score: fuzzy.ScoreMin}
	defer func() {
		if r := recover(); r != nil {
			applog.Error(errors.Errorf("scoring candidate %d panicked: %v", index, r))
			c.Score = fuzzy.ScoreMin
			c.Positions = nil
		}
	}()

	c.Score = fuzzy.Score(needle, text, slab)
	if !opts.WithPositions || c.Score <= fuzzy.ScoreMin {
		return c
	}

	pos := make([]int, needle.Len())
	fuzzy.Positions(needle, text, pos, slab)
	c.Positions = pos
	return c
}

func filterMatches(in []Candidate) []Candidate {
	out := in[:0]
	for _, c := range in {
		if c.Score > fuzzy.ScoreMin {
			out = append(out, c)
		}
	}
	return out
}
