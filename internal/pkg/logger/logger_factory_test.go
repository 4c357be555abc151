//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padding_oracle_service/internal/pkg/config"
)

func TestNewLogger(t *testing.T) {
	t.Run("console logger", func(t *testing.T) {
		log, err := newLogger(&config.LoggerSettings{
			LogLevel: config.LogLevelInfo,
			LogType:  config.LogTypeConsole,
		})
		require.NoError(t, err)
		assert.NotNil(t, log)

		log.Info("console logger message")
	})

	t.Run("file logger", func(t *testing.T) {
		log, err := newLogger(&config.LoggerSettings{
			LogLevel:   config.LogLevelDebug,
			LogType:    config.LogTypeFile,
			FilePath:   filepath.Join(t.TempDir(), "attack.log"),
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
		require.NoError(t, err)
		assert.NotNil(t, log)

		log.Debug("file logger message")
	})

	t.Run("invalid settings", func(t *testing.T) {
		_, err := newLogger(&config.LoggerSettings{
			LogLevel: "verbose",
			LogType:  config.LogTypeConsole,
		})
		assert.Error(t, err)
	})
}

func TestInitAndGetLogger(t *testing.T) {
	err := InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	})
	require.NoError(t, err)

	log, err := GetLogger()
	require.NoError(t, err)
	assert.NotNil(t, log)

	// The singleton survives repeated initialization.
	err = InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
	})
	require.NoError(t, err)

	again, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, log, again)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "", formatArgs())
	assert.Equal(t, "session abc", formatArgs("session ", "abc"))
}
