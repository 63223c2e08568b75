package config

import (
	"os"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	opts, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Query != "" {
		t.Errorf("Query = %q, want empty", opts.Query)
	}
	if !opts.WithPositions {
		t.Error("WithPositions should default to true")
	}
	if opts.CacheSize != 4096 {
		t.Errorf("CacheSize = %d, want 4096", opts.CacheSize)
	}
}

func TestParseCommandLineFlags(t *testing.T) {
	opts, err := Parse([]string{"-q", "amor", "-workers", "4", "-plain"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Query != "amor" {
		t.Errorf("Query = %q, want %q", opts.Query, "amor")
	}
	if opts.Workers != 4 {
		t.Errorf("Workers = %d, want 4", opts.Workers)
	}
	if !opts.Plain {
		t.Error("Plain should be true")
	}
}

func TestEnvironmentOptsAreOverriddenByArgs(t *testing.T) {
	os.Setenv("FZMATCH_OPTS", "-q fromenv -workers 2")
	defer os.Unsetenv("FZMATCH_OPTS")

	opts, err := Parse([]string{"-q", "fromargs"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Query != "fromargs" {
		t.Errorf("Query = %q, want args to win over env", opts.Query)
	}
	if opts.Workers != 2 {
		t.Errorf("Workers = %d, want env value 2 to survive when args don't override it", opts.Workers)
	}
}
