package clipboard

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func stub(t *testing.T, native error, tty bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevNative, prevTerm, prevTTY := writeNative, terminal, isTerminal
	t.Cleanup(func() { writeNative, terminal, isTerminal = prevNative, prevTerm, prevTTY })

	writeNative = func(string) error { return native }
	terminal = &buf
	isTerminal = func() bool { return tty }
	return &buf
}

func TestCopyPrefersNative(t *testing.T) {
	buf := stub(t, nil, true)

	method, err := Copy("/logs")
	require.NoError(t, err)
	require.Equal(t, Native, method)
	require.Zero(t, buf.Len())
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	buf := stub(t, errors.New("no xclip"), true)
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("TMUX", "")

	method, err := Copy("/logs")
	require.NoError(t, err)
	require.Equal(t, OSC52, method)
	// base64("/logs")
	require.Contains(t, buf.String(), "L2xvZ3M=")
	require.Contains(t, buf.String(), "\x1b]52;")
}

func TestCopyFailsOnDumbTerminal(t *testing.T) {
	buf := stub(t, errors.New("no xclip"), true)
	t.Setenv("TERM", "dumb")

	_, err := Copy("/logs")
	require.Error(t, err)
	require.ErrorContains(t, err, "no xclip")
	require.Zero(t, buf.Len())
}

func TestCopyFailsWithoutTTY(t *testing.T) {
	stub(t, errors.New("no xclip"), false)
	t.Setenv("TERM", "xterm")

	_, err := Copy("x")
	require.Error(t, err)
}
