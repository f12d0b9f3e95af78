package logger

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func captureOutput(f func()) string {
	oldStdout := os.Stdout

	r, w, _ := os.Pipe()
	os.Stdout = w

	outputChan := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outputChan <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = oldStdout

	return <-outputChan
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	assert.NotNil(t, logger)
	assert.IsType(t, &zerologLogger{}, logger)
}

func TestLevels(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	tests := []struct {
		name    string
		logFunc func(Logger)
		level   string
	}{
		{"debug", func(l Logger) { l.Debug("seeding accounts") }, "debug"},
		{"info", func(l Logger) { l.Info("seeding accounts") }, "info"},
		{"warn", func(l Logger) { l.Warn("seeding accounts") }, "warn"},
		{"error", func(l Logger) { l.Error("seeding accounts") }, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureOutput(func() {
				tt.logFunc(NewLogger())
			})

			assert.Contains(t, output, "seeding accounts")
			assert.Contains(t, output, `"level":"`+tt.level+`"`)
		})
	}
}

func TestLogLevelFiltering(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	output := captureOutput(func() {
		NewLogger().Debug("debug should be filtered")
	})
	assert.NotContains(t, output, "debug should be filtered")

	zerolog.SetGlobalLevel(zerolog.ErrorLevel)

	output = captureOutput(func() {
		NewLogger().Info("info should be filtered")
	})
	assert.NotContains(t, output, "info should be filtered")
}

func TestNewLoggerWithLevel(t *testing.T) {
	tests := []struct {
		level         string
		expectedLevel zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"DEBUG", zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLoggerWithLevel(tt.level)
			assert.NotNil(t, logger)
			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestWithField(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	output := captureOutput(func() {
		logger := NewLogger().
			WithField("run_id", "abc").
			WithField("backend", "sqlite")
		logger.Info("provisioning")
	})

	assert.Contains(t, output, `"run_id":"abc"`)
	assert.Contains(t, output, `"backend":"sqlite"`)
}

func TestWithFieldsReturnsNewInstance(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	original := NewLogger()
	derived := original.WithFields(map[string]interface{}{"accounts": 4})
	assert.NotSame(t, original, derived)

	output := captureOutput(func() {
		l := NewLogger()
		l.WithFields(map[string]interface{}{"accounts": 4, "projects": 4})
		l.Info("original untouched")
	})
	assert.NotContains(t, output, `"accounts"`)
}

func TestNewConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "info")
	logger.WithField("mode", "test").Info("workspace scaffolded")

	assert.Contains(t, buf.String(), "workspace scaffolded")
	assert.Contains(t, buf.String(), "mode=test")
}
