package config

import (
	"flag"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/partcalc/internal/errors"
)

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	return ParseConfig("partcalc", args, io.Discard)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parse(t, "-parts", "2,3,5")
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3, 5}, cfg.Parts)
	assert.Equal(t, "full", cfg.Form)
	assert.Empty(t, cfg.Report)
	assert.False(t, cfg.NoReorder)
	assert.False(t, cfg.Quiet)
}

func TestParseConfig_Points(t *testing.T) {
	cfg, err := parse(t, "-parts", "1,2", "-t", "0, 7, 123456789012345678901234567890")
	require.NoError(t, err)

	require.Len(t, cfg.Points, 3)
	assert.Equal(t, int64(0), cfg.Points[0].Int64())
	assert.Equal(t, int64(7), cfg.Points[1].Int64())
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	assert.Zero(t, huge.Cmp(cfg.Points[2]))
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no parts and no load", []string{"-t", "5"}},
		{"parts and load together", []string{"-parts", "2", "-load", "f.txt"}},
		{"non-positive part", []string{"-parts", "2,0"}},
		{"non-integer part", []string{"-parts", "2,x"}},
		{"negative point", []string{"-parts", "2", "-t", "-1"}},
		{"bad kernel", []string{"-parts", "2", "-force-kernel", "base"}},
		{"bad report", []string{"-parts", "2", "-report", "brief"}},
		{"bad form", []string{"-parts", "2", "-form", "json"}},
		{"quiet and verbose", []string{"-parts", "2", "-q", "-v"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, apperrors.ExitErrorConfig, apperrors.ExitCodeFor(err))
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := parse(t, "-h")
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestParseConfig_VersionSkipsValidation(t *testing.T) {
	cfg, err := parse(t, "-version")
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Run("env fills unset flags", func(t *testing.T) {
		t.Setenv("PARTCALC_PARTS", "3,4")
		t.Setenv("PARTCALC_QUIET", "yes")
		t.Setenv("PARTCALC_FORCE_KERNEL", "direct")

		cfg, err := parse(t)
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 4}, cfg.Parts)
		assert.True(t, cfg.Quiet)
		assert.Equal(t, "direct", cfg.ForceKernel)
	})

	t.Run("explicit flags win over env", func(t *testing.T) {
		t.Setenv("PARTCALC_PARTS", "3,4")

		cfg, err := parse(t, "-parts", "7")
		require.NoError(t, err)
		assert.Equal(t, []int64{7}, cfg.Parts)
	})

	t.Run("alias counts as explicitly set", func(t *testing.T) {
		t.Setenv("PARTCALC_OUTPUT", "env.txt")

		cfg, err := parse(t, "-parts", "2", "-o", "flag.txt")
		require.NoError(t, err)
		assert.Equal(t, "flag.txt", cfg.OutputFile)
	})
}

func TestParsePartsList(t *testing.T) {
	got, err := ParsePartsList(" 5 , 6 ,10 ")
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6, 10}, got)

	_, err = ParsePartsList("")
	assert.Error(t, err)
}
