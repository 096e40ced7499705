// Package config defines the application configuration and its resolution
// chain: command-line flags take priority over PARTCALC_-prefixed
// environment variables, which take priority over defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	apperrors "github.com/agbru/partcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "PARTCALC_"

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Parts is the restriction list to build a representation for.
	Parts []int64
	// Points are the evaluation targets, arbitrary-magnitude nonnegative
	// integers.
	Points []*big.Int
	// Report is the content-report fidelity: "summary", "full" or "list".
	Report string
	// Form is the file serialization format: "full" or "list".
	Form string
	// OutputFile is the path the representation is saved to (empty: none).
	OutputFile string
	// LoadFile is a previously saved representation to reload (empty: build
	// from Parts instead).
	LoadFile string
	// ExtendParts are additional elements incorporated after building or
	// loading.
	ExtendParts []int64
	// NoReorder disables the restriction-list ordering preprocessor.
	NoReorder bool
	// ForceKernel pins the update strategy: "", "direct" or "interpolation".
	ForceKernel string
	// MetricsAddr enables the diagnostics HTTP endpoint when non-empty,
	// e.g. "127.0.0.1:9090".
	MetricsAddr string
	// Verbose enables debug-level logging and construction detail.
	Verbose bool
	// Quiet restricts output to bare evaluation results.
	Quiet bool
	// ShowVersion prints the version and exits.
	ShowVersion bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags not explicitly set, and validates the
// result.
//
// Parameters:
//   - progName: The program name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The destination for flag errors and usage text.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(progName string, args []string, errWriter io.Writer) (AppConfig, error) {
	var cfg AppConfig
	var partsSpec, pointsSpec, extendSpec string

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&partsSpec, "parts", "", "comma-separated restriction list, e.g. \"2,3,5\"")
	fs.StringVar(&pointsSpec, "t", "", "comma-separated evaluation points (arbitrary magnitude)")
	fs.StringVar(&cfg.Report, "report", "", "print a content report: summary, full or list")
	fs.StringVar(&cfg.Form, "form", "full", "file serialization format: full or list")
	fs.StringVar(&cfg.OutputFile, "o", "", "save the representation to this file")
	fs.StringVar(&cfg.OutputFile, "output", "", "save the representation to this file (alias for -o)")
	fs.StringVar(&cfg.LoadFile, "load", "", "reload a saved representation instead of building")
	fs.StringVar(&extendSpec, "extend", "", "comma-separated parts to incorporate after building or loading")
	fs.BoolVar(&cfg.NoReorder, "no-reorder", false, "disable the restriction-list ordering preprocessor")
	fs.StringVar(&cfg.ForceKernel, "force-kernel", "", "pin the update strategy: direct or interpolation")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging (alias for -v)")
	fs.BoolVar(&cfg.Quiet, "q", false, "print bare evaluation results only")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print bare evaluation results only (alias for -q)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s -parts LIST [-t POINTS] [options]\n\n", progName)
		fmt.Fprintf(errWriter, "Counts partitions of t into parts drawn from a fixed restriction list,\n")
		fmt.Fprintf(errWriter, "with O(1) evaluation after preprocessing.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, &partsSpec, &pointsSpec, &extendSpec, fs)

	var err error
	if partsSpec != "" {
		if cfg.Parts, err = ParsePartsList(partsSpec); err != nil {
			return AppConfig{}, apperrors.ConfigError{Message: fmt.Sprintf("invalid -parts: %v", err)}
		}
	}
	if extendSpec != "" {
		if cfg.ExtendParts, err = ParsePartsList(extendSpec); err != nil {
			return AppConfig{}, apperrors.ConfigError{Message: fmt.Sprintf("invalid -extend: %v", err)}
		}
	}
	if pointsSpec != "" {
		if cfg.Points, err = ParsePointsList(pointsSpec); err != nil {
			return AppConfig{}, apperrors.ConfigError{Message: fmt.Sprintf("invalid -t: %v", err)}
		}
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks cross-field consistency of the configuration.
func (c AppConfig) Validate() error {
	if c.ShowVersion {
		return nil
	}
	if len(c.Parts) == 0 && c.LoadFile == "" {
		return apperrors.ConfigError{Message: "either -parts or -load is required"}
	}
	if len(c.Parts) > 0 && c.LoadFile != "" {
		return apperrors.ConfigError{Message: "-parts and -load are mutually exclusive"}
	}
	switch c.ForceKernel {
	case "", "direct", "interpolation":
	default:
		return apperrors.ConfigError{Message: fmt.Sprintf("invalid -force-kernel %q: must be direct or interpolation", c.ForceKernel)}
	}
	switch c.Report {
	case "", "summary", "full", "list":
	default:
		return apperrors.ConfigError{Message: fmt.Sprintf("invalid -report %q: must be summary, full or list", c.Report)}
	}
	switch c.Form {
	case "full", "list":
	default:
		return apperrors.ConfigError{Message: fmt.Sprintf("invalid -form %q: must be full or list", c.Form)}
	}
	if c.Quiet && c.Verbose {
		return apperrors.ConfigError{Message: "-quiet and -verbose are mutually exclusive"}
	}
	return nil
}

// ParsePartsList parses a comma-separated restriction list of positive
// integers.
func ParsePartsList(spec string) ([]int64, error) {
	fields := strings.Split(spec, ",")
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", f)
		}
		if v < 1 {
			return nil, fmt.Errorf("%d is not a positive integer", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}

// ParsePointsList parses a comma-separated list of nonnegative integers of
// arbitrary magnitude.
func ParsePointsList(spec string) ([]*big.Int, error) {
	fields := strings.Split(spec, ",")
	out := make([]*big.Int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, ok := new(big.Int).SetString(f, 10)
		if !ok {
			return nil, fmt.Errorf("%q is not an integer", f)
		}
		if v.Sign() < 0 {
			return nil, fmt.Errorf("%s is negative", f)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}
