package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cantina-api/pkg/config"
)

func TestNew_LevelFromConfig(t *testing.T) {
	cases := []struct {
		logLevel string
		want     zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},        // vacío cae en info
		{"verboso", zerolog.InfoLevel}, // inválido cae en info
	}
	for _, tc := range cases {
		t.Run("nivel "+tc.logLevel, func(t *testing.T) {
			zl := New(config.AppConfig{Env: "production", Name: "cantina-api", LogLevel: tc.logLevel})
			assert.Equal(t, tc.want, zl.GetLevel())
		})
	}
}

func TestNew_ProductionEmitsJSONWithAppField(t *testing.T) {
	var buf bytes.Buffer
	zl := newWithWriter(config.AppConfig{Env: "production", Name: "cantina-api", LogLevel: "info"}, &buf)

	zl.Info().Msg("arranque")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cantina-api", entry["app"])
	assert.Equal(t, "arranque", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_LevelFiltersLowerEvents(t *testing.T) {
	var buf bytes.Buffer
	zl := newWithWriter(config.AppConfig{Env: "production", Name: "cantina-api", LogLevel: "warn"}, &buf)

	zl.Info().Msg("no debería salir")
	assert.Zero(t, buf.Len())

	zl.Warn().Msg("sí sale")
	assert.NotZero(t, buf.Len())
}

func TestNew_DevelopmentUsesConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	zl := newWithWriter(config.AppConfig{Env: "development", Name: "cantina-api", LogLevel: "info"}, &buf)

	zl.Info().Msg("arranque")

	// la salida de consola no es JSON
	var entry map[string]any
	assert.Error(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, buf.String(), "arranque")
}
