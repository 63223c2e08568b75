// Package config parses fzmatch's command-line options: command-line
// arguments take precedence over an FZMATCH_OPTS environment variable,
// itself tokenized with github.com/mattn/go-shellwords the same way
// FZF_DEFAULT_OPTS is tokenized.
package config

import (
	"flag"
	"os"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

// Options is the immutable result of parsing the CLI.
type Options struct {
	Query         string // initial query: pre-fills the picker, or is the query ranked in plain mode
	Workers       int    // 0 means runtime.NumCPU()
	WithPositions bool   // highlight matched positions in interactive mode
	Plain         bool   // force non-interactive, tab-separated output
	CacheSize     int
}

func defaultOptions() Options {
	return Options{
		WithPositions: true,
		CacheSize:     4096,
	}
}

// Parse builds Options from $FZMATCH_OPTS (if set) followed by args,
// command-line arguments taking precedence over the environment default.
func Parse(args []string) (Options, error) {
	opts := defaultOptions()

	if env := os.Getenv("FZMATCH_OPTS"); env != "" {
		words, err := parseShellWords(env)
		if err != nil {
			return opts, errors.Wrap(err, "$FZMATCH_OPTS")
		}
		if err := apply(&opts, words); err != nil {
			return opts, errors.Wrap(err, "$FZMATCH_OPTS")
		}
	}

	if err := apply(&opts, args); err != nil {
		return opts, err
	}
	return opts, nil
}

func parseShellWords(s string) ([]string, error) {
	parser := shellwords.NewParser()
	parser.ParseEnv = true
	return parser.Parse(s)
}

func apply(opts *Options, args []string) error {
	fs := flag.NewFlagSet("fzmatch", flag.ContinueOnError)
	query := fs.String("q", opts.Query, "initial query")
	workers := fs.Int("workers", opts.Workers, "number of scoring goroutines (0 = NumCPU)")
	withPositions := fs.Bool("positions", opts.WithPositions, "highlight matched positions")
	plain := fs.Bool("plain", opts.Plain, "force plain tab-separated output")
	cacheSize := fs.Int("cache-size", opts.CacheSize, "maximum cached (needle, haystack) scores")

	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "parsing options")
	}

	opts.Query = *query
	opts.Workers = *workers
	opts.WithPositions = *withPositions
	opts.Plain = *plain
	opts.CacheSize = *cacheSize
	return nil
}
