package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelDebug, ParseLevel(" DEBUG "))
	require.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("info"))
	require.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var console bytes.Buffer

	logger, closer := NewLogger("warn", &console, FileConfig{})
	defer func() { require.NoError(t, closer.Close()) }()

	logger.Info("State transition", slog.String("to", "Menu"))
	logger.Warn("Failed to save config", slog.String("err", "disk full"))

	output := console.String()
	require.NotContains(t, output, "State transition")
	require.Contains(t, output, "Failed to save config")
	require.Contains(t, output, `err="disk full"`)
}

func TestLoggerWritesToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "dice.log")

	var console bytes.Buffer

	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false

	logger, closer := NewLogger("debug", &console, cfg)

	logger.Debug("Enter initial state", slog.String("state", "Splash"))
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	require.Contains(t, string(content), "Enter initial state")
	require.Contains(t, console.String(), "Enter initial state")
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("dice.log")
	require.Equal(t, FileConfig{
		Path:       "dice.log",
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}, cfg)
}
