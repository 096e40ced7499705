package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/partcalc/internal/denumerant"
)

// TestNewBuildMetrics verifies that repeated instantiation is safe: every
// instrument set lives on its own registry.
func TestNewBuildMetrics(t *testing.T) {
	m1 := NewBuildMetrics()
	require.NotNil(t, m1)
	assert.NotPanics(t, func() { NewBuildMetrics() })
}

func TestBuildMetrics_ObserverFeedsInstruments(t *testing.T) {
	m := NewBuildMetrics()
	obs := m.Observer()

	obs.KernelInvoked(denumerant.KernelDirect)
	obs.KernelInvoked(denumerant.KernelInterpolation)
	obs.KernelInvoked(denumerant.KernelDirect)
	obs.PartIncorporated(7, 2, 3*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `partcalc_kernel_invocations_total{kernel="direct"} 2`)
	assert.Contains(t, body, `partcalc_kernel_invocations_total{kernel="interpolation"} 1`)
	assert.Contains(t, body, "partcalc_parts_incorporated_total 1")
	assert.Contains(t, body, "partcalc_part_build_seconds")
}

func TestBuildMetrics_HandlerIncludesRuntimeCollectors(t *testing.T) {
	m := NewBuildMetrics()

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "go_goroutines"),
		"exposition should include Go runtime metrics")
}
