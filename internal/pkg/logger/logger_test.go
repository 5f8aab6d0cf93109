package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLevel(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  zerolog.Level
	}{
		{DebugLevel, zerolog.DebugLevel},
		{WarnLevel, zerolog.WarnLevel},
		{ErrorLevel, zerolog.ErrorLevel},
		{DisabledLevel, zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, zerologLevel(tt.level))
		})
	}
}

func TestComponentTagsJSONOutput(t *testing.T) {
	t.Cleanup(func() { Configure(Config{Level: DisabledLevel}) })

	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})

	lgr := Component("enrollment")
	lgr.Debug().Msg("dropped")
	lgr.Info().Msg("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "enrollment", entry["component"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "info", entry["level"])
}
