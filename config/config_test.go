package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-modal/modal"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SIFTLY_MODAL_CONFIG", "")
	return home
}

func apply(opts []modal.Option) modal.Config {
	c := modal.DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "bottom", c.Modal.Direction)
	require.Equal(t, 250, c.Modal.DurationMs)
	require.Equal(t, modal.DefaultMaskColor, c.Modal.MaskColor)
	require.True(t, c.Modal.Closable)
	require.False(t, c.Modal.CloseOnLocationChange)
	require.Empty(t, c.Log.File)
}

func TestLoadFileThenEnv(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "modal.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[modal]
direction = "left"
duration_ms = 300
close_on_location_change = true

[log]
file = "debug.log"
`), 0o600))
	t.Setenv("SIFTLY_MODAL_MODAL_DURATION_MS", "120")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "left", c.Modal.Direction)
	require.Equal(t, 120, c.Modal.DurationMs, "env wins over file")
	require.True(t, c.Modal.CloseOnLocationChange)
	require.Equal(t, "debug.log", c.Log.File)
}

func TestLoadDefaultLocation(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "siftly-modal")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[modal]\nclosable = false\n"), 0o600))

	c, err := Load("")
	require.NoError(t, err)
	require.False(t, c.Modal.Closable)
}

func TestLoadErrors(t *testing.T) {
	home := isolate(t)

	_, err := Load(filepath.Join(home, "missing.toml"))
	require.Error(t, err, "an explicit file must exist")

	bad := filepath.Join(home, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[modal\n"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)

	negative := filepath.Join(home, "negative.toml")
	require.NoError(t, os.WriteFile(negative, []byte("[modal]\nduration_ms = -1\n"), 0o600))
	_, err = Load(negative)
	require.ErrorContains(t, err, "duration_ms")
}

func TestModalOptions(t *testing.T) {
	got := apply(ModalConfig{
		Direction:             "right",
		DurationMs:            80,
		MaskColor:             "#101010",
		CloseIcon:             "x",
		Closable:              false,
		CloseOnLocationChange: true,
	}.Options())

	require.Equal(t, modal.FromRight, got.FromDirection)
	require.Equal(t, 80*time.Millisecond, got.TransitionDuration)
	require.Equal(t, "#101010", got.MaskColor)
	require.Equal(t, "x", got.CloseIcon)
	require.False(t, got.Closable)
	require.True(t, got.CloseOnLocationChange)
}
