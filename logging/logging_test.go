package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupLoggingWithoutFileDisablesDebug(t *testing.T) {
	cleanup, err := SetupLogging("")
	require.NoError(t, err)
	t.Cleanup(cleanup)

	require.False(t, IsDebugMode())
	Debugf("dropped %d", 1) // must not panic with output discarded
}

func TestSetupLoggingWritesLeveledLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := SetupLogging(path)
	require.NoError(t, err)
	require.True(t, IsDebugMode())

	Debugf("modal %s opened", "help")
	Warnf("clipboard unavailable")
	cleanup()
	require.False(t, IsDebugMode())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "DEBUG modal help opened")
	require.Contains(t, string(data), "WARN clipboard unavailable")

	// restore a quiet logger for the rest of the package's tests
	quiet, err := SetupLogging("")
	require.NoError(t, err)
	t.Cleanup(quiet)
}

func TestSetupLoggingBadPath(t *testing.T) {
	_, err := SetupLogging(filepath.Join(t.TempDir(), "missing", "dir", "debug.log"))
	require.Error(t, err)
}
