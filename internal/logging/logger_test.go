package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestNewLogger_EmitsStructuredFields(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(prev)

	var buf bytes.Buffer
	log := NewLogger(&buf, "testcomp")

	log.Info("built",
		String("name", "value"),
		Int("depth", 3),
		Int64("part", 42),
		Uint64("count", 7),
		Float64("seconds", 0.25),
	)

	m := decodeLine(t, &buf)
	assert.Equal(t, "built", m["message"])
	assert.Equal(t, "testcomp", m["component"])
	assert.Equal(t, "value", m["name"])
	assert.Equal(t, float64(3), m["depth"])
	assert.Equal(t, float64(42), m["part"])
	assert.Equal(t, float64(7), m["count"])
	assert.Equal(t, 0.25, m["seconds"])
}

func TestLogger_ErrField(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(prev)

	var buf bytes.Buffer
	log := NewLogger(&buf, "testcomp")
	log.Error("failed", Err(errors.New("boom")))

	m := decodeLine(t, &buf)
	assert.Equal(t, "boom", m["error"])
	assert.Equal(t, "error", m["level"])
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	assert.NotPanics(t, func() {
		log.Debug("a")
		log.Info("b", Int("x", 1))
		log.Warn("c")
		log.Error("d", Err(errors.New("e")))
	})
}
