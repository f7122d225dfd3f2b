package router

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushAndBack(t *testing.T) {
	h := New("/")
	require.Equal(t, "/", h.Path())

	require.True(t, h.Push("/logs"))
	require.True(t, h.Push("logs/today/"))
	require.Equal(t, "/logs/today", h.Path())
	require.Equal(t, 3, h.Len())

	require.True(t, h.Back())
	require.Equal(t, "/logs", h.Path())
	require.True(t, h.Back())
	require.False(t, h.Back(), "root entry stays")
	require.Equal(t, "/", h.Path())
}

func TestPushSamePathIsNoop(t *testing.T) {
	h := New("/a")
	require.False(t, h.Push("/a/"))
	require.Equal(t, 1, h.Len())
}

func TestClean(t *testing.T) {
	for in, want := range map[string]string{
		"":        "/",
		"/":       "/",
		"//":      "/",
		"a":       "/a",
		" /b/ ":   "/b",
		"/c/d///": "/c/d",
	} {
		require.Equal(t, want, Clean(in), in)
	}
}
