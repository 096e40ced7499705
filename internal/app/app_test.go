package app

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/partcalc/internal/errors"
	"github.com/agbru/partcalc/internal/logging"
)

// runApp runs the full pipeline with the given CLI arguments and returns the
// exit code and captured stdout.
func runApp(t *testing.T, args ...string) (int, string) {
	t.Helper()
	application, err := New(append([]string{"partcalc"}, args...), io.Discard)
	require.NoError(t, err)
	application.Log = logging.NewNopLogger()

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)
	return code, out.String()
}

func TestRun_Version(t *testing.T) {
	code, out := runApp(t, "-version")
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t, "partcalc dev\n", out)
}

func TestHasVersionFlag(t *testing.T) {
	assert.True(t, HasVersionFlag([]string{"-parts", "2", "--version"}))
	assert.False(t, HasVersionFlag([]string{"-parts", "2"}))
}

func TestRun_BuildAndEvaluate(t *testing.T) {
	code, out := runApp(t, "-parts", "1,2,3", "-t", "3,10", "-q")
	require.Equal(t, apperrors.ExitSuccess, code)

	// Partitions of 3 from {1,2,3}: 1+1+1, 1+2, 3.
	// Partitions of 10 from {1,2,3}: 14.
	assert.Equal(t, "3\n14\n", out)
}

func TestRun_ExtendAfterBuild(t *testing.T) {
	code, out := runApp(t, "-parts", "5,6,10", "-extend", "2", "-t", "11", "-q")
	require.Equal(t, apperrors.ExitSuccess, code)

	// Partitions of 11 from {2,5,6,10}: 5+6 and 5+2+2+2.
	assert.Equal(t, "2\n", out)
}

func TestRun_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repr.txt")

	code, _ := runApp(t, "-parts", "2,3,5", "-o", path, "-form", "list", "-q")
	require.Equal(t, apperrors.ExitSuccess, code)

	code, out := runApp(t, "-load", path, "-t", "100", "-q")
	require.Equal(t, apperrors.ExitSuccess, code)

	_, direct := runApp(t, "-parts", "2,3,5", "-t", "100", "-q")
	assert.Equal(t, direct, out, "reloaded representation must evaluate identically")
}

func TestRun_LoadMissingFile(t *testing.T) {
	application, err := New([]string{"partcalc", "-load", filepath.Join(t.TempDir(), "nope.txt"), "-q"}, io.Discard)
	require.NoError(t, err)
	application.Log = logging.NewNopLogger()

	code := application.Run(context.Background(), io.Discard)
	assert.Equal(t, apperrors.ExitErrorGeneric, code)
}

func TestRun_Report(t *testing.T) {
	code, out := runApp(t, "-parts", "2,3", "-report", "summary", "-q")
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.True(t, strings.HasPrefix(out, "parts=["), "summary report should lead the output")
	assert.Contains(t, out, "level=2")
}

func TestRun_ForcedKernelsAgree(t *testing.T) {
	_, direct := runApp(t, "-parts", "4,6,9", "-t", "50,51,52,53", "-force-kernel", "direct", "-q")
	_, interp := runApp(t, "-parts", "4,6,9", "-t", "50,51,52,53", "-force-kernel", "interpolation", "-q")
	assert.Equal(t, direct, interp)
}

func TestNew_ConfigError(t *testing.T) {
	_, err := New([]string{"partcalc", "-t", "5"}, io.Discard)
	require.Error(t, err)
	assert.Equal(t, apperrors.ExitErrorConfig, apperrors.ExitCodeFor(err))
}

func TestIsHelpError(t *testing.T) {
	_, err := New([]string{"partcalc", "-h"}, io.Discard)
	require.Error(t, err)
	assert.True(t, IsHelpError(err))
}
