// Package config loads run configuration from YAML files, grounded on
// AleutianLocal's cmd/aleutian/cmd_evaluation.go pattern: read the file,
// gopkg.in/yaml.v3.Unmarshal into a plain struct, log failures via
// log/slog, then translate into the domain package's functional options.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kstar-go/kstar"
)

// File is the on-disk shape of a run configuration file.
type File struct {
	K                 int    `yaml:"k"`
	ReopenClosed      *bool  `yaml:"reopen_closed"`
	SimplePlansOnly   bool   `yaml:"simple_plans_only"`
	DumpPlans         bool   `yaml:"dump_plans"`
	DumpPath          string `yaml:"dump_path"`
	MaxTime           string `yaml:"max_time"`
	Verbosity         string `yaml:"verbosity"`
	DeduplicateByPlan bool   `yaml:"deduplicate_by_plan"`
	MaxStates         int    `yaml:"max_states"`
}

// Load reads and parses a YAML run configuration file at path.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("config: reading %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("config: parsing %q: %w", path, err)
	}
	return f, nil
}

// Options translates a File into kstar.Option values, applying the same
// defaults kstar.RunConfig itself would (spec §6) for anything left zero.
func (f File) Options() []kstar.Option {
	var opts []kstar.Option

	if f.K > 0 {
		opts = append(opts, kstar.WithK(f.K))
	}
	if f.ReopenClosed != nil {
		opts = append(opts, kstar.WithReopenClosed(*f.ReopenClosed))
	}
	opts = append(opts, kstar.WithSimplePlansOnly(f.SimplePlansOnly))
	opts = append(opts, kstar.WithDumpPlans(f.DumpPlans))
	opts = append(opts, kstar.WithDeduplicateByPlan(f.DeduplicateByPlan))

	if f.MaxStates > 0 {
		opts = append(opts, kstar.WithMaxStates(f.MaxStates))
	}

	if f.MaxTime != "" {
		d, err := time.ParseDuration(f.MaxTime)
		if err != nil {
			slog.Warn("config: ignoring unparseable max_time", "value", f.MaxTime, "error", err)
		} else {
			opts = append(opts, kstar.WithMaxTime(d))
		}
	}

	if v, ok := verbosityFromString(f.Verbosity); ok {
		opts = append(opts, kstar.WithVerbosity(v))
	}

	return opts
}

func verbosityFromString(s string) (kstar.Verbosity, bool) {
	switch s {
	case "silent":
		return kstar.Silent, true
	case "normal":
		return kstar.Normal, true
	case "verbose":
		return kstar.Verbose, true
	case "debug":
		return kstar.Debug, true
	default:
		return kstar.Normal, false
	}
}
