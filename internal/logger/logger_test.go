package logger

import (
	"testing"

	"sparkcalc/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor/models"
)

func TestWriterConfig(t *testing.T) {
	wc := writerConfig(nil)
	assert.Equal(t, models.LogWriterTypeConsole, wc.Type)
	assert.Equal(t, models.OutputFormatLogfmt, wc.OutputType)
	assert.Equal(t, "15:04:05.000", wc.TimeFormat)

	wc = writerConfig(&config.LoggingConfig{Format: "json", TimeFormat: "15:04"})
	assert.Equal(t, models.OutputFormatJSON, wc.OutputType)
	assert.Equal(t, "15:04", wc.TimeFormat)
}

func TestSetupLoggerInstallsGlobal(t *testing.T) {
	cfg := config.DefaultConfig()
	l := SetupLogger(&cfg.Logging, "warn")
	require.NotNil(t, l)
	assert.True(t, l == GetLogger(), "SetupLogger installs the global logger")
	Stop()
}
