package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/partcalc/internal/denumerant"
)

// BuildProgress renders construction progress on a terminal spinner. It
// implements the construction observer contract; the builder invokes it from
// a single goroutine, so no locking is needed.
type BuildProgress struct {
	sp      Spinner
	total   int
	done    int
	kernels int
}

// NewBuildProgress creates and starts a spinner tracking the incorporation
// of total restriction-list elements, writing to out.
//
// Parameters:
//   - total: The number of restriction-list elements to incorporate.
//   - out: The writer the spinner animates on, normally stderr.
//
// Returns:
//   - *BuildProgress: The started progress display; call Stop when done.
func NewBuildProgress(total int, out io.Writer) *BuildProgress {
	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(fmt.Sprintf(" building representation (0/%d parts)", total))
	sp.Start()
	return &BuildProgress{sp: sp, total: total}
}

// KernelInvoked counts kernel applications for the status line.
func (p *BuildProgress) KernelInvoked(denumerant.KernelKind) {
	p.kernels++
}

// PartIncorporated advances the status line after each element.
func (p *BuildProgress) PartIncorporated(part int64, level int, d time.Duration) {
	p.done++
	p.sp.UpdateSuffix(fmt.Sprintf(" incorporated part %d in %s (%d/%d parts, %d kernel calls)",
		part, FormatExecutionDuration(d), p.done, p.total, p.kernels))
}

// Stop halts the spinner animation.
func (p *BuildProgress) Stop() {
	p.sp.Stop()
}
