package settings

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	settings, err := Parse(nil, map[string]string{}, io.Discard)
	require.NoError(t, err)

	require.Equal(t, Settings{
		LogLevel: "info",
		Assets:   "assets",
		FakeLoad: 5 * time.Second,
	}, settings)
}

func TestEnvironment(t *testing.T) {
	settings, err := Parse(nil, map[string]string{
		"DICE_LOG_LEVEL":  "debug",
		"DICE_LOG_FILE":   "dice.log",
		"DICE_STORE_PATH": "/tmp/store.db",
		"DICE_ASSETS":     "/opt/dice/assets",
		"DICE_PROFILE":    "cpu",
		"DICE_FAKE_LOAD":  "1500ms",
	}, io.Discard)
	require.NoError(t, err)

	require.Equal(t, Settings{
		LogLevel:  "debug",
		LogFile:   "dice.log",
		StorePath: "/tmp/store.db",
		Assets:    "/opt/dice/assets",
		Profile:   ProfileCPU,
		FakeLoad:  1500 * time.Millisecond,
	}, settings)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	settings, err := Parse(
		[]string{"-log-level", "warn", "-fake-load", "0s", "-profile", "mem"},
		map[string]string{"DICE_LOG_LEVEL": "debug", "DICE_FAKE_LOAD": "10s"},
		io.Discard,
	)
	require.NoError(t, err)

	require.Equal(t, "warn", settings.LogLevel)
	require.Equal(t, time.Duration(0), settings.FakeLoad)
	require.Equal(t, ProfileMem, settings.Profile)
}

func TestInvalidSettings(t *testing.T) {
	_, err := Parse(nil, map[string]string{"DICE_FAKE_LOAD": "soon"}, io.Discard)
	require.Error(t, err)

	_, err = Parse([]string{"-profile", "trace"}, map[string]string{}, io.Discard)
	require.ErrorContains(t, err, "unknown profile mode")

	_, err = Parse([]string{"-fake-load", "-1s"}, map[string]string{}, io.Discard)
	require.ErrorContains(t, err, "must not be negative")

	_, err = Parse([]string{"-unknown"}, map[string]string{}, io.Discard)
	require.Error(t, err)
}
