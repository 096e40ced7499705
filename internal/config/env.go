// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strings"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive). Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with PARTCALC_):
//   - PARTS, POINTS, EXTEND, REPORT, FORM, OUTPUT, LOAD, FORCE_KERNEL,
//     METRICS_ADDR, NO_REORDER, VERBOSE, QUIET
func applyEnvOverrides(cfg *AppConfig, partsSpec, pointsSpec, extendSpec *string, fs *flag.FlagSet) {
	type envOverride struct {
		envKey string
		flags  []string
		apply  func(string)
	}

	overrides := []envOverride{
		// String overrides
		{"PARTS", []string{"parts"}, func(v string) { *partsSpec = v }},
		{"POINTS", []string{"t"}, func(v string) { *pointsSpec = v }},
		{"EXTEND", []string{"extend"}, func(v string) { *extendSpec = v }},
		{"REPORT", []string{"report"}, func(v string) { cfg.Report = v }},
		{"FORM", []string{"form"}, func(v string) { cfg.Form = v }},
		{"OUTPUT", []string{"o", "output"}, func(v string) { cfg.OutputFile = v }},
		{"LOAD", []string{"load"}, func(v string) { cfg.LoadFile = v }},
		{"FORCE_KERNEL", []string{"force-kernel"}, func(v string) { cfg.ForceKernel = v }},
		{"METRICS_ADDR", []string{"metrics-addr"}, func(v string) { cfg.MetricsAddr = v }},

		// Boolean overrides
		{"NO_REORDER", []string{"no-reorder"}, func(v string) { cfg.NoReorder = parseBoolEnv(v, cfg.NoReorder) }},
		{"VERBOSE", []string{"v", "verbose"}, func(v string) { cfg.Verbose = parseBoolEnv(v, cfg.Verbose) }},
		{"QUIET", []string{"q", "quiet"}, func(v string) { cfg.Quiet = parseBoolEnv(v, cfg.Quiet) }},
	}

	for _, o := range overrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(val)
		}
	}
}
