package denumerant

import (
	"fmt"
	"math/big"
	"strings"

	apperrors "github.com/agbru/partcalc/internal/errors"
)

// ReportLevel selects the fidelity of a content report.
type ReportLevel int

const (
	// ReportSummary lists the period count and period values per power,
	// without function values.
	ReportSummary ReportLevel = iota
	// ReportFull lists every exact rational value, line-oriented.
	ReportFull
	// ReportList is the fully structured nested-sequence form, meant for
	// mechanical re-parsing.
	ReportList
)

// String returns the selector name of the report level.
func (l ReportLevel) String() string {
	switch l {
	case ReportSummary:
		return "summary"
	case ReportFull:
		return "full"
	case ReportList:
		return "list"
	default:
		return "unknown"
	}
}

// ParseReportLevel resolves a report-level selector.
func ParseReportLevel(s string) (ReportLevel, error) {
	switch s {
	case "summary":
		return ReportSummary, nil
	case "full":
		return ReportFull, nil
	case "list":
		return ReportList, nil
	default:
		return 0, apperrors.ValidationError{
			Field:   "report",
			Value:   s,
			Message: `must be one of "summary", "full", "list"`,
		}
	}
}

// ratLiteral renders an exact rational as an integer literal or as
// "numerator/denominator".
func ratLiteral(v *big.Rat) string {
	if v.IsInt() {
		return v.Num().String()
	}
	return v.RatString()
}

// joinInt64 renders a comma-separated integer sequence.
func joinInt64(xs []int64) string {
	var sb strings.Builder
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", x)
	}
	return sb.String()
}

// FormatReport renders a content report of the representation at the given
// fidelity level.
func FormatReport(d *RestrictedPartitionFunction, level ReportLevel) (string, error) {
	if err := d.validate(); err != nil {
		return "", err
	}
	switch level {
	case ReportSummary:
		return formatSummary(d), nil
	case ReportFull:
		return formatFull(d), nil
	case ReportList:
		return formatList(d), nil
	default:
		return "", apperrors.ValidationError{
			Field:   "report",
			Value:   fmt.Sprintf("%d", level),
			Message: "unknown report level",
		}
	}
}

// header renders the first line of the summary and full forms.
func header(d *RestrictedPartitionFunction) string {
	return fmt.Sprintf("parts=[%s], level=%d, %d period object(s)",
		joinInt64(d.parts), d.Level(), d.PeriodObjectCount())
}

func formatSummary(d *RestrictedPartitionFunction) string {
	var sb strings.Builder
	sb.WriteString(header(d))
	sb.WriteByte('\n')
	for m, g := range d.coeffs {
		fmt.Fprintf(&sb, "power=%d, %d period object(s), periods=[%s]\n",
			m, g.Len(), joinInt64(g.Periods()))
	}
	return sb.String()
}

func formatFull(d *RestrictedPartitionFunction) string {
	var sb strings.Builder
	sb.WriteString(header(d))
	sb.WriteByte('\n')
	for m, g := range d.coeffs {
		fmt.Fprintf(&sb, "power=%d, %d period object(s):\n", m, g.Len())
		for _, f := range g.Functions() {
			fmt.Fprintf(&sb, "P=%d, values=[%s]\n", f.Period(), joinRats(f.values))
		}
	}
	return sb.String()
}

func formatList(d *RestrictedPartitionFunction) string {
	var sb strings.Builder
	sb.WriteString("[[")
	sb.WriteString(joinInt64(d.parts))
	sb.WriteString("], [")
	for m, g := range d.coeffs {
		if m > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for i, f := range g.Functions() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('[')
			sb.WriteString(joinRats(f.values))
			sb.WriteByte(']')
		}
		sb.WriteByte(']')
	}
	sb.WriteString("]]")
	return sb.String()
}

// joinRats renders a comma-separated sequence of exact rational literals.
func joinRats(vs []*big.Rat) string {
	var sb strings.Builder
	for i, v := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ratLiteral(v))
	}
	return sb.String()
}
