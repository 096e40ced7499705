package app

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/partcalc/internal/cli"
	"github.com/agbru/partcalc/internal/denumerant"
	apperrors "github.com/agbru/partcalc/internal/errors"
	"github.com/agbru/partcalc/internal/logging"
	"github.com/agbru/partcalc/internal/metrics"
	"github.com/agbru/partcalc/internal/server"
)

const shutdownGrace = 5 * time.Second

// teeObserver fans construction notifications out to several observers.
type teeObserver []denumerant.Observer

func (t teeObserver) KernelInvoked(kind denumerant.KernelKind) {
	for _, o := range t {
		o.KernelInvoked(kind)
	}
}

func (t teeObserver) PartIncorporated(part int64, level int, d time.Duration) {
	for _, o := range t {
		o.PartIncorporated(part, level, d)
	}
}

// runCompute orchestrates the standard pipeline: obtain a representation
// (build, load, extend), emit the requested reports and files, then
// evaluate the requested points.
func (a *Application) runCompute(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	bm := metrics.NewBuildMetrics()
	if a.Config.MetricsAddr != "" {
		srv := server.New(a.Config.MetricsAddr, bm.Handler(), a.Log)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.Log.Warn("diagnostics server shutdown failed", logging.Err(err))
			}
		}()
	}

	d, buildTime, err := a.obtainRepresentation(ctx, bm)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	if a.Config.Verbose {
		snap := metrics.ReadMemory()
		a.Log.Debug("post-build memory",
			logging.Uint64("heap_alloc_bytes", snap.HeapAlloc),
			logging.Uint64("heap_objects", snap.HeapObjects))
	}

	if err := a.emitOutputs(d, buildTime, out); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	return a.evaluatePoints(ctx, d, out)
}

// obtainRepresentation builds the representation from the restriction list,
// or reloads a persisted one, then incorporates any extension parts. The
// returned duration covers the whole of this work.
func (a *Application) obtainRepresentation(ctx context.Context, bm *metrics.BuildMetrics) (*denumerant.RestrictedPartitionFunction, time.Duration, error) {
	observers := teeObserver{bm.Observer()}
	if !a.Config.Quiet && a.Config.LoadFile == "" {
		progress := cli.NewBuildProgress(len(a.Config.Parts)+len(a.Config.ExtendParts), a.ErrWriter)
		observers = append(observers, progress)
		defer progress.Stop()
	}

	opts := []denumerant.Option{
		denumerant.WithLogger(a.Log),
		denumerant.WithObserver(observers),
		denumerant.WithOrdering(!a.Config.NoReorder),
	}
	switch a.Config.ForceKernel {
	case "direct":
		opts = append(opts, denumerant.WithForcedKernel(denumerant.KernelDirect))
	case "interpolation":
		opts = append(opts, denumerant.WithForcedKernel(denumerant.KernelInterpolation))
	}
	builder := denumerant.NewBuilder(opts...)

	start := time.Now()
	var d *denumerant.RestrictedPartitionFunction
	var err error
	if a.Config.LoadFile != "" {
		d, err = loadRepresentation(a.Config.LoadFile)
	} else {
		d, err = builder.Build(ctx, a.Config.Parts)
	}
	if err != nil {
		return nil, 0, err
	}

	for _, p := range a.Config.ExtendParts {
		if d, err = builder.Extend(ctx, d, p); err != nil {
			return nil, 0, err
		}
	}
	return d, time.Since(start), nil
}

// loadRepresentation reloads a persisted representation from path.
func loadRepresentation(path string) (*denumerant.RestrictedPartitionFunction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.WrapError(err, "opening %s", path)
	}
	defer f.Close()
	return denumerant.Parse(f)
}

// emitOutputs prints the requested content report and persists the
// representation when an output file is configured.
func (a *Application) emitOutputs(d *denumerant.RestrictedPartitionFunction, buildTime time.Duration, out io.Writer) error {
	if a.Config.Report != "" {
		lvl, err := denumerant.ParseReportLevel(a.Config.Report)
		if err != nil {
			return err
		}
		text, err := denumerant.FormatReport(d, lvl)
		if err != nil {
			return err
		}
		cli.DisplayReport(out, text, a.Config.Quiet)
	}

	if a.Config.OutputFile != "" {
		form, err := denumerant.ParseForm(a.Config.Form)
		if err != nil {
			return err
		}
		cfg := cli.OutputConfig{
			OutputFile: a.Config.OutputFile,
			Form:       form,
			Quiet:      a.Config.Quiet,
			Verbose:    a.Config.Verbose,
		}
		if err := cli.WriteRepresentationToFile(d, buildTime, cfg); err != nil {
			return err
		}
		if !a.Config.Quiet {
			cli.DisplaySaved(out, a.Config.OutputFile)
		}
	}
	return nil
}

// evaluatePoints evaluates every requested point concurrently and prints the
// results in input order. Each evaluation is O(level) big-number work, so
// the fan-out only pays off for long point lists, but it never changes
// results: the representation is immutable by this stage.
func (a *Application) evaluatePoints(ctx context.Context, d *denumerant.RestrictedPartitionFunction, out io.Writer) int {
	points := a.Config.Points
	if len(points) == 0 {
		return apperrors.ExitSuccess
	}

	results := make([]*big.Int, len(points))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, pt := range points {
		i, pt := i, pt
		g.Go(func() error {
			v, err := d.Evaluate(pt)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	for i, pt := range points {
		cli.DisplayEvaluation(out, pt, results[i], a.Config.Quiet)
	}
	return apperrors.ExitSuccess
}
