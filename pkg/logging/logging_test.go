package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/teardown-go/teardown/pkg/logging"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		logging.SetupLogger(tt.verbosity)
		if got := zerolog.GlobalLevel(); got != tt.want {
			t.Errorf("verbosity %d: global level = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := logging.GetLogger("registry")
	logger.Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"component":"registry"`) {
		t.Errorf("log output missing component field: %s", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("log output missing message: %s", out)
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := logging.WithFields(map[string]interface{}{"key": "conn-1"})
	logger.Info().Msg("flushed")

	out := buf.String()
	if !strings.Contains(out, `"key":"conn-1"`) {
		t.Errorf("log output missing field: %s", out)
	}
}
