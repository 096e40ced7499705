package denumerant

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	apperrors "github.com/agbru/partcalc/internal/errors"
)

// Persistence is text-based and human-readable. Two forms exist: the
// line-oriented "full" report and the nested bracketed "list" report; both
// round-trip to a representation that is evaluation-equivalent to the
// original (the internal period-object structure is normalized through the
// merge on reconstruction, not preserved byte for byte).
//
// Lines starting with '#' and blank lines are ignored on input, so saved
// files may carry provenance headers.

// Form selects a persistence format.
type Form int

const (
	// FormFull is the line-oriented full report.
	FormFull Form = iota
	// FormList is the nested bracketed sequence report.
	FormList
)

// ParseForm resolves a persistence-format selector.
func ParseForm(s string) (Form, error) {
	switch s {
	case "full":
		return FormFull, nil
	case "list":
		return FormList, nil
	default:
		return 0, apperrors.ValidationError{
			Field:   "form",
			Value:   s,
			Message: `must be one of "full", "list"`,
		}
	}
}

// Write serializes d to w in the given form. The write is all-or-nothing
// per call: any error is surfaced synchronously and no recovery is
// attempted.
func Write(w io.Writer, d *RestrictedPartitionFunction, form Form) error {
	var level ReportLevel
	switch form {
	case FormFull:
		level = ReportFull
	case FormList:
		level = ReportList
	default:
		return apperrors.ValidationError{
			Field:   "form",
			Value:   fmt.Sprintf("%d", form),
			Message: "unknown persistence form",
		}
	}
	text, err := FormatReport(d, level)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err = io.WriteString(w, text)
	return apperrors.WrapError(err, "writing representation")
}

// Parse reconstructs a representation from either serialized form,
// auto-detected from the first significant character. Malformed or
// truncated input yields a PersistedDataError and no partial
// reconstruction.
func Parse(r io.Reader) (*RestrictedPartitionFunction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.WrapError(err, "reading representation")
	}
	lines := strings.Split(string(data), "\n")
	significant := make([]string, 0, len(lines))
	lineNos := make([]int, 0, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		significant = append(significant, trimmed)
		lineNos = append(lineNos, i+1)
	}
	if len(significant) == 0 {
		return nil, apperrors.PersistedDataError{Message: "empty input"}
	}
	if strings.HasPrefix(significant[0], "[") {
		return parseListForm(strings.Join(significant, " "))
	}
	return parseFullForm(significant, lineNos)
}

// ─────────────────────────────────────────────────────────────────────────────
// Full form
// ─────────────────────────────────────────────────────────────────────────────

// parseFullForm reconstructs a representation from the line-oriented form.
func parseFullForm(lines []string, lineNos []int) (*RestrictedPartitionFunction, error) {
	pos := 0
	fail := func(msg string) error {
		line := 0
		if pos < len(lineNos) {
			line = lineNos[pos]
		} else if len(lineNos) > 0 {
			line = lineNos[len(lineNos)-1]
		}
		return apperrors.PersistedDataError{Line: line, Message: msg}
	}

	parts, level, err := parseFullHeader(lines[0])
	if err != nil {
		return nil, apperrors.PersistedDataError{Line: lineNos[0], Message: err.Error()}
	}
	if level != len(parts) {
		return nil, apperrors.PersistedDataError{
			Line:    lineNos[0],
			Message: fmt.Sprintf("level %d does not match %d part(s)", level, len(parts)),
		}
	}
	pos = 1

	d := &RestrictedPartitionFunction{
		parts:  parts,
		coeffs: make([]*CoefficientGroup, level),
	}
	for m := 0; m < level; m++ {
		d.coeffs[m] = NewCoefficientGroup()
		if pos >= len(lines) {
			return nil, fail(fmt.Sprintf("truncated input: missing power=%d section", m))
		}
		var pm, k int
		if _, err := fmt.Sscanf(lines[pos], "power=%d, %d period object(s):", &pm, &k); err != nil || pm != m || k < 0 {
			return nil, fail(fmt.Sprintf("expected %q section header", fmt.Sprintf("power=%d", m)))
		}
		pos++
		for i := 0; i < k; i++ {
			if pos >= len(lines) {
				return nil, fail(fmt.Sprintf("truncated input: power=%d expects %d period object(s)", m, k))
			}
			fn, err := parsePeriodObjectLine(lines[pos])
			if err != nil {
				return nil, fail(err.Error())
			}
			d.coeffs[m].MergeOrAppend(fn)
			pos++
		}
	}
	if pos != len(lines) {
		return nil, fail("unexpected trailing content")
	}
	return d, nil
}

// parseFullHeader parses "parts=[a, b, ...], level=<n>, <k> period object(s)".
func parseFullHeader(line string) ([]int64, int, error) {
	const prefix = "parts=["
	if !strings.HasPrefix(line, prefix) {
		return nil, 0, fmt.Errorf("expected header starting with %q", prefix)
	}
	rest := line[len(prefix):]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return nil, 0, fmt.Errorf("unterminated parts list in header")
	}
	parts, err := parseIntList(rest[:end])
	if err != nil {
		return nil, 0, err
	}
	var level, count int
	if _, err := fmt.Sscanf(rest[end:], "], level=%d, %d period object(s)", &level, &count); err != nil {
		return nil, 0, fmt.Errorf("malformed header counts")
	}
	if level < 1 {
		return nil, 0, fmt.Errorf("level must be at least 1")
	}
	return parts, level, nil
}

// parsePeriodObjectLine parses "P=<period>, values=[v0, v1, ...]".
func parsePeriodObjectLine(line string) (*PeriodicFunction, error) {
	var period int64
	const marker = ", values=["
	idx := strings.Index(line, marker)
	if idx < 0 || !strings.HasSuffix(line, "]") {
		return nil, fmt.Errorf("malformed period object line")
	}
	if _, err := fmt.Sscanf(line[:idx], "P=%d", &period); err != nil || period < 1 {
		return nil, fmt.Errorf("malformed period in period object line")
	}
	values, err := parseRatList(line[idx+len(marker) : len(line)-1])
	if err != nil {
		return nil, err
	}
	if int64(len(values)) != period {
		return nil, fmt.Errorf("period object has %d value(s), period %d", len(values), period)
	}
	return NewPeriodicFunctionFromValues(values), nil
}

// parseIntList parses a comma-separated sequence of positive integers.
func parseIntList(s string) ([]int64, error) {
	fields := splitNonEmpty(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty parts list")
	}
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("invalid part %q", f)
		}
		out[i] = v
	}
	return out, nil
}

// parseRatList parses a comma-separated sequence of exact rational
// literals (integer, or integer "/" integer).
func parseRatList(s string) ([]*big.Rat, error) {
	fields := splitNonEmpty(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty value list")
	}
	out := make([]*big.Rat, len(fields))
	for i, f := range fields {
		v, err := parseRat(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseRat parses one exact rational literal.
func parseRat(s string) (*big.Rat, error) {
	if strings.ContainsAny(s, ".eE") {
		return nil, fmt.Errorf("invalid rational literal %q", s)
	}
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid rational literal %q", s)
	}
	return v, nil
}

// splitNonEmpty splits on commas and trims whitespace, dropping empty
// fields only when the whole string is blank.
func splitNonEmpty(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	fields := strings.Split(s, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// ─────────────────────────────────────────────────────────────────────────────
// List form
// ─────────────────────────────────────────────────────────────────────────────

// listParser is a recursive-descent parser over the nested bracketed form
// [ [parts...], [ [[fn values]...] per power ] ].
type listParser struct {
	s   string
	pos int
}

func (p *listParser) fail(msg string) error {
	return apperrors.PersistedDataError{Message: fmt.Sprintf("%s at offset %d", msg, p.pos)}
}

func (p *listParser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t') {
		p.pos++
	}
}

// peek returns the next significant byte without consuming it, or 0 at EOF.
func (p *listParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *listParser) expect(c byte) error {
	if p.peek() != c {
		return p.fail(fmt.Sprintf("expected %q", string(c)))
	}
	p.pos++
	return nil
}

// atom consumes a rational or integer literal token.
func (p *listParser) atom() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) && strings.IndexByte("[],  \t", p.s[p.pos]) < 0 {
		p.pos++
	}
	if p.pos == start {
		return "", p.fail("expected a number")
	}
	return p.s[start:p.pos], nil
}

// parseListForm reconstructs a representation from the nested bracketed
// form.
func parseListForm(s string) (*RestrictedPartitionFunction, error) {
	p := &listParser{s: s}
	if err := p.expect('['); err != nil {
		return nil, err
	}

	// Parts.
	if err := p.expect('['); err != nil {
		return nil, err
	}
	var parts []int64
	for p.peek() != ']' {
		if len(parts) > 0 {
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}
		tok, err := p.atom()
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil || v < 1 {
			return nil, p.fail(fmt.Sprintf("invalid part %q", tok))
		}
		parts = append(parts, v)
	}
	p.pos++ // consume ']'
	if len(parts) == 0 {
		return nil, p.fail("empty parts list")
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}

	// Per-power groups.
	if err := p.expect('['); err != nil {
		return nil, err
	}
	d := &RestrictedPartitionFunction{
		parts:  parts,
		coeffs: make([]*CoefficientGroup, 0, len(parts)),
	}
	for p.peek() != ']' {
		if len(d.coeffs) > 0 {
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}
		group, err := p.parseGroup()
		if err != nil {
			return nil, err
		}
		d.coeffs = append(d.coeffs, group)
	}
	p.pos++ // consume ']'
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	if p.peek() != 0 {
		return nil, p.fail("unexpected trailing content")
	}
	if len(d.coeffs) != len(parts) {
		return nil, apperrors.PersistedDataError{
			Message: fmt.Sprintf("%d power slot(s) for %d part(s)", len(d.coeffs), len(parts)),
		}
	}
	return d, nil
}

// parseGroup parses one power slot: a sequence of period-object value lists.
func (p *listParser) parseGroup() (*CoefficientGroup, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	group := NewCoefficientGroup()
	first := true
	for p.peek() != ']' {
		if !first {
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}
		first = false
		values, err := p.parseValueList()
		if err != nil {
			return nil, err
		}
		group.MergeOrAppend(NewPeriodicFunctionFromValues(values))
	}
	p.pos++ // consume ']'
	return group, nil
}

// parseValueList parses one period object's value sequence; the period is
// the sequence length.
func (p *listParser) parseValueList() ([]*big.Rat, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	var values []*big.Rat
	for p.peek() != ']' {
		if len(values) > 0 {
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}
		tok, err := p.atom()
		if err != nil {
			return nil, err
		}
		v, err := parseRat(tok)
		if err != nil {
			return nil, p.fail(err.Error())
		}
		values = append(values, v)
	}
	p.pos++ // consume ']'
	if len(values) == 0 {
		return nil, p.fail("empty value list")
	}
	return values, nil
}
