//go:build !integration

package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		pretty   bool
		expected zerolog.Level
	}{
		{
			name:     "debug level",
			level:    "debug",
			expected: zerolog.DebugLevel,
		},
		{
			name:     "info level",
			level:    "info",
			expected: zerolog.InfoLevel,
		},
		{
			name:     "warn level",
			level:    "warn",
			expected: zerolog.WarnLevel,
		},
		{
			name:     "error level",
			level:    "error",
			expected: zerolog.ErrorLevel,
		},
		{
			name:     "trace level",
			level:    "trace",
			expected: zerolog.TraceLevel,
		},
		{
			name:     "invalid level defaults to info",
			level:    "invalid",
			expected: zerolog.InfoLevel,
		},
		{
			name:     "empty level defaults to info",
			level:    "",
			expected: zerolog.InfoLevel,
		},
		{
			name:     "pretty output",
			level:    "info",
			pretty:   true,
			expected: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
			assert.NotNil(t, Logger())
		})
	}
}

func TestWithContext(t *testing.T) {
	Init("info", false)

	tests := []struct {
		name   string
		fields map[string]interface{}
	}{
		{
			name:   "empty fields",
			fields: map[string]interface{}{},
		},
		{
			name: "single field",
			fields: map[string]interface{}{
				"analysis_id": "a1",
			},
		},
		{
			name: "multiple fields",
			fields: map[string]interface{}{
				"analysis_id": "a1",
				"orders":      250000,
				"partial":     true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := WithContext(tt.fields)
			assert.NotNil(t, logger)
		})
	}
}
