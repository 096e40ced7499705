// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayEvaluation], [DisplaySaved].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatExecutionDuration].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteRepresentationToFile].

package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/partcalc/internal/denumerant"
	"github.com/agbru/partcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the representation (empty for no file
	// output).
	OutputFile string
	// Form selects the serialization format for file output.
	Form denumerant.Form
	// Quiet mode suppresses everything except bare evaluation results.
	Quiet bool
	// Verbose enables additional construction detail.
	Verbose bool
}

// WriteRepresentationToFile persists a representation to the configured
// file, preceded by '#' comment headers that the parser skips on reload.
//
// Parameters:
//   - d: The representation to persist.
//   - buildTime: The wall time spent constructing it.
//   - config: Output configuration; no-op when OutputFile is empty.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteRepresentationToFile(d *denumerant.RestrictedPartitionFunction, buildTime time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	parts := d.Parts()
	fmt.Fprintf(file, "# Restricted partition function representation\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Parts: %v\n", parts)
	fmt.Fprintf(file, "# Level: %d\n", d.Level())
	fmt.Fprintf(file, "# Period objects: %d\n", d.PeriodObjectCount())
	fmt.Fprintf(file, "# Build time: %s\n", FormatExecutionDuration(buildTime))
	fmt.Fprintf(file, "\n")

	return denumerant.Write(file, d, config.Form)
}

// DisplayEvaluation outputs one evaluation result. Quiet mode prints the
// bare count for scripting; otherwise the line is styled and includes the
// evaluation point.
//
// Parameters:
//   - out: The output writer.
//   - t: The evaluation point.
//   - count: The partition count at t.
//   - quiet: Whether to emit the bare count only.
func DisplayEvaluation(out io.Writer, t, count *big.Int, quiet bool) {
	if quiet {
		fmt.Fprintln(out, count.String())
		return
	}
	th := ui.GetCurrentTheme()
	fmt.Fprintf(out, "%s = %s\n",
		th.Muted.Render(fmt.Sprintf("d(%s)", t.String())),
		th.Accent.Render(count.String()))
}

// DisplaySaved confirms a successful file save.
func DisplaySaved(out io.Writer, path string) {
	th := ui.GetCurrentTheme()
	fmt.Fprintf(out, "%s %s\n",
		th.Success.Render("✓ Representation saved to:"),
		th.Accent.Render(path))
}

// DisplayReport writes a content report with a styled header line.
func DisplayReport(out io.Writer, report string, quiet bool) {
	if quiet {
		fmt.Fprint(out, report)
		return
	}
	th := ui.GetCurrentTheme()
	fmt.Fprintln(out, th.Title.Render("Representation"))
	fmt.Fprint(out, report)
}
