package denumerant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/partcalc/internal/errors"
)

func TestParseReportLevel(t *testing.T) {
	for _, s := range []string{"summary", "full", "list"} {
		lvl, err := ParseReportLevel(s)
		require.NoError(t, err)
		assert.Equal(t, s, lvl.String())
	}

	var vErr apperrors.ValidationError
	_, err := ParseReportLevel("brief")
	require.ErrorAs(t, err, &vErr)
}

func TestFormatReport_Singleton(t *testing.T) {
	d := newBase(2)

	t.Run("summary", func(t *testing.T) {
		got, err := FormatReport(d, ReportSummary)
		require.NoError(t, err)
		want := "parts=[2], level=1, 1 period object(s)\n" +
			"power=0, 1 period object(s), periods=[2]\n"
		assert.Equal(t, want, got)
	})

	t.Run("full", func(t *testing.T) {
		got, err := FormatReport(d, ReportFull)
		require.NoError(t, err)
		want := "parts=[2], level=1, 1 period object(s)\n" +
			"power=0, 1 period object(s):\n" +
			"P=2, values=[1, 0]\n"
		assert.Equal(t, want, got)
	})

	t.Run("list", func(t *testing.T) {
		got, err := FormatReport(d, ReportList)
		require.NoError(t, err)
		assert.Equal(t, "[[2], [[[1, 0]]]]", got)
	})
}

func TestFormatReport_RationalLiterals(t *testing.T) {
	b := NewBuilder(WithOrdering(false))
	d := mustBuild(t, b, []int64{2, 3})

	got, err := FormatReport(d, ReportFull)
	require.NoError(t, err)

	// The level-2 representation has fractional coefficients; they must be
	// rendered as exact fractions, never decimals.
	assert.Contains(t, got, "/")
	assert.NotContains(t, got, ".")
	assert.True(t, strings.HasPrefix(got, "parts=[2, 3], level=2"))
}

func TestFormatReport_InvalidRepresentation(t *testing.T) {
	var vErr apperrors.ValidationError
	_, err := FormatReport(&RestrictedPartitionFunction{}, ReportSummary)
	require.ErrorAs(t, err, &vErr)

	_, err = FormatReport(nil, ReportSummary)
	require.ErrorAs(t, err, &vErr)
}
