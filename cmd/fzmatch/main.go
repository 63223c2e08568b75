// Command fzmatch ranks lines read from standard input against a query
// using fzmatch's fuzzy-matching engine, either interactively in a
// terminal picker or, when piped, as plain tab-separated output. It wires
// together the library's engine, concurrent ranker, score cache,
// configuration and logging pieces.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"fzmatch/internal/applog"
	"fzmatch/internal/cache"
	"fzmatch/internal/config"
	"fzmatch/internal/protector"
	"fzmatch/internal/rank"
	"fzmatch/internal/tui"
	"fzmatch/pkg/fuzzy"
)

func main() {
	applog.Init()

	opts, err := config.Parse(os.Args[1:])
	if err != nil {
		applog.Fatal(errors.Wrap(err, "parsing options"))
	}

	candidates, err := readCandidates(os.Stdin)
	if err != nil {
		applog.Fatal(errors.Wrap(err, "reading candidates"))
	}

	protector.Protect()

	scoreCache := cache.New(opts.CacheSize)

	rescore := func(query string) []rank.Candidate {
		needle := fuzzy.PrepareNeedle(query)
		return rankCached(needle, candidates, rank.Options{
			Workers:       opts.Workers,
			WithPositions: opts.WithPositions,
		}, scoreCache)
	}

	if opts.Plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		printPlain(rescore(opts.Query))
		return
	}

	picker, err := tui.NewPicker(rescore)
	if err != nil {
		applog.Fatal(errors.Wrap(err, "starting interactive picker"))
	}
	defer picker.Close()

	selected, ok := picker.Run(opts.Query)
	picker.Close()
	if !ok {
		os.Exit(1)
	}
	fmt.Println(selected)
}

func readCandidates(f *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// rankCached reranks candidates for needle, consulting scoreCache for
// candidates already scored against an identical query string and
// recording fresh scores for reuse by the next keystroke.
func rankCached(needle fuzzy.Needle, candidates []string, opts rank.Options, scoreCache *cache.ScoreCache) []rank.Candidate {
	query := string(needle.Runes())
	results := make([]rank.Candidate, 0, len(candidates))
	var uncached []string
	var uncachedIdx []int

	for i, text := range candidates {
		if score, ok := scoreCache.Get(query, text); ok {
			if score == fuzzy.ScoreMin {
				continue
			}
			results = append(results, rank.Candidate{Index: i, Text: text, Score: score})
			continue
		}
		uncached = append(uncached, text)
		uncachedIdx = append(uncachedIdx, i)
	}

	fresh := rank.Rank(needle, uncached, rank.Options{
		Workers:           opts.Workers,
		WithPositions:     opts.WithPositions,
		IncludeNonMatches: true,
	})
	for _, c := range fresh {
		scoreCache.Put(query, c.Text, c.Score)
		if c.Score == fuzzy.ScoreMin {
			continue
		}
		c.Index = uncachedIdx[c.Index]
		results = append(results, c)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func printPlain(results []rank.Candidate) {
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, c := range results {
		fmt.Fprintf(w, "%.4f\t%s\n", float64(c.Score), c.Text)
	}
}
