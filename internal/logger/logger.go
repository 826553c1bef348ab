// Package logger provides centralized logging using arbor.
package logger

import (
	"strings"
	"sync"

	"sparkcalc/internal/config"

	"github.com/ternarybob/arbor"
	arborcommon "github.com/ternarybob/arbor/common"
	"github.com/ternarybob/arbor/models"
)

var (
	globalLogger arbor.ILogger
	loggerMutex  sync.RWMutex
)

// GetLogger returns the global logger instance.
// If InitLogger() hasn't been called yet, returns a fallback console logger.
func GetLogger() arbor.ILogger {
	loggerMutex.RLock()
	if globalLogger != nil {
		loggerMutex.RUnlock()
		return globalLogger
	}
	loggerMutex.RUnlock()

	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	if globalLogger == nil {
		globalLogger = arbor.NewLogger().WithConsoleWriter(writerConfig(nil))
		globalLogger.Warn().Msg("Using fallback logger - InitLogger() should be called during startup")
	}
	return globalLogger
}

// InitLogger stores the provided logger as the global singleton instance.
func InitLogger(logger arbor.ILogger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	globalLogger = logger
}

// SetupLogger configures a console logger from cfg and installs it as the global logger.
// A non-empty levelOverride replaces cfg.Logging.Level.
func SetupLogger(cfg *config.LoggingConfig, levelOverride string) arbor.ILogger {
	level := "info"
	if cfg != nil && cfg.Level != "" {
		level = cfg.Level
	}
	if levelOverride != "" {
		level = levelOverride
	}

	logger := arbor.NewLogger().
		WithConsoleWriter(writerConfig(cfg)).
		WithLevelFromString(strings.ToLower(level))

	InitLogger(logger)
	return logger
}

func writerConfig(cfg *config.LoggingConfig) models.WriterConfiguration {
	timeFormat := "15:04:05.000"
	if cfg != nil && cfg.TimeFormat != "" {
		timeFormat = cfg.TimeFormat
	}

	outputType := models.OutputFormatLogfmt
	if cfg != nil && cfg.Format == "json" {
		outputType = models.OutputFormatJSON
	}

	return models.WriterConfiguration{
		Type:       models.LogWriterTypeConsole,
		TimeFormat: timeFormat,
		OutputType: outputType,
	}
}

// Stop flushes any remaining context logs before application shutdown.
// Safe to call multiple times (Arbor's Stop is idempotent).
func Stop() {
	arborcommon.Stop()
}
