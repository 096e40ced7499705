package denumerant

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/partcalc/internal/errors"
)

func TestParseForm(t *testing.T) {
	full, err := ParseForm("full")
	require.NoError(t, err)
	assert.Equal(t, FormFull, full)

	list, err := ParseForm("list")
	require.NoError(t, err)
	assert.Equal(t, FormList, list)

	var vErr apperrors.ValidationError
	_, err = ParseForm("binary")
	require.ErrorAs(t, err, &vErr)
}

func assertSameEvaluations(t *testing.T, a, b *RestrictedPartitionFunction, tMax int64) {
	t.Helper()
	for tv := int64(0); tv <= tMax; tv++ {
		va, err := a.Evaluate(big.NewInt(tv))
		require.NoError(t, err)
		vb, err := b.Evaluate(big.NewInt(tv))
		require.NoError(t, err)
		require.Zero(t, va.Cmp(vb), "t=%d", tv)
	}
}

func TestSerialization_RoundTrip(t *testing.T) {
	b := NewBuilder()
	cases := [][]int64{
		{2},
		{2, 3},
		{4, 6, 9},
		{5, 6, 10},
	}
	for _, parts := range cases {
		d := mustBuild(t, b, parts)
		for _, form := range []Form{FormFull, FormList} {
			var sb strings.Builder
			require.NoError(t, Write(&sb, d, form))

			got, err := Parse(strings.NewReader(sb.String()))
			require.NoError(t, err, "parts=%v form=%d", parts, form)
			assert.Equal(t, d.Parts(), got.Parts())
			assert.Equal(t, d.Level(), got.Level())
			assertSameEvaluations(t, d, got, 80)
		}
	}
}

func TestSerialization_FullFormIsStable(t *testing.T) {
	d := mustBuild(t, NewBuilder(), []int64{4, 6})

	var first strings.Builder
	require.NoError(t, Write(&first, d, FormFull))
	reparsed, err := Parse(strings.NewReader(first.String()))
	require.NoError(t, err)

	var second strings.Builder
	require.NoError(t, Write(&second, reparsed, FormFull))
	assert.Equal(t, first.String(), second.String())
}

func TestParse_SkipsCommentsAndBlankLines(t *testing.T) {
	input := "# saved by partcalc\n\n# another comment\n[[2], [[[1, 0]]]]\n"
	d, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, d.Parts())

	v, err := d.Evaluate(big.NewInt(4))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int64())
}

func TestParse_FullForm(t *testing.T) {
	input := "parts=[2], level=1, 1 period object(s)\n" +
		"power=0, 1 period object(s):\n" +
		"P=2, values=[1, 0]\n"
	d, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, d.Level())

	v, err := d.Evaluate(big.NewInt(6))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int64())
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"comments only", "# nothing here\n"},
		{"garbage header", "hello world\n"},
		{"level does not match parts", "parts=[2, 3], level=1, 1 period object(s)\npower=0, 0 period object(s):\n"},
		{"truncated sections", "parts=[2], level=1, 1 period object(s)\n"},
		{"value count mismatch", "parts=[2], level=1, 1 period object(s)\npower=0, 1 period object(s):\nP=3, values=[1, 0]\n"},
		{"decimal literal", "parts=[2], level=1, 1 period object(s)\npower=0, 1 period object(s):\nP=2, values=[0.5, 0]\n"},
		{"trailing content", "parts=[2], level=1, 1 period object(s)\npower=0, 1 period object(s):\nP=2, values=[1, 0]\nextra\n"},
		{"unclosed list", "[[2], [[[1, 0]]]"},
		{"list slot count mismatch", "[[2, 3], [[[1, 0]]]]"},
		{"list empty parts", "[[], [[[1]]]]"},
		{"list trailing content", "[[2], [[[1, 0]]]] tail"},
		{"list bad number", "[[2], [[[1, x]]]]"},
		{"negative part", "[[-2], [[[1, 0]]]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			var dataErr apperrors.PersistedDataError
			assert.ErrorAs(t, err, &dataErr, "want a persisted-data error, got %v", err)
		})
	}
}

func TestParse_ReportsLineNumbers(t *testing.T) {
	input := "# comment\nparts=[2], level=1, 1 period object(s)\npower=0, 1 period object(s):\nP=2, values=[1, oops]\n"
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)

	var dataErr apperrors.PersistedDataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, 4, dataErr.Line)
}

func FuzzParse(f *testing.F) {
	f.Add("[[2], [[[1, 0]]]]")
	f.Add("[[2, 3], [[[1, 0], [1/3, 0, 2/3]], [[1/6]]]]")
	f.Add("parts=[2], level=1, 1 period object(s)\npower=0, 1 period object(s):\nP=2, values=[1, 0]\n")
	f.Add("# comment\n\n[[1], [[[1]]]]")
	f.Add("parts=[], level=0, 0 period object(s)\n")

	f.Fuzz(func(t *testing.T, input string) {
		d, err := Parse(strings.NewReader(input))
		if err != nil {
			return
		}
		// Anything accepted must survive a serialize/reparse cycle.
		var sb strings.Builder
		if err := Write(&sb, d, FormList); err != nil {
			t.Fatalf("serializing an accepted representation failed: %v", err)
		}
		if _, err := Parse(strings.NewReader(sb.String())); err != nil {
			t.Fatalf("reparsing a serialized representation failed: %v", err)
		}
	})
}
