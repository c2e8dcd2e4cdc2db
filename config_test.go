package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMustLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := "log-level: debug\nhttp-port: \"9999\"\nai:\n  depth: 3\n  log-search-stats: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	conf := MustLoad(path)
	require.Equal(t, "debug", conf.LogLevel)
	require.Equal(t, "9999", conf.HTTPPort)
	require.Equal(t, 3, conf.AI.Depth)
	require.True(t, conf.AI.LogSearchStats)
}

func TestMustLoadFallsBackToEnv(t *testing.T) {
	conf := MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
	require.Equal(t, "info", conf.LogLevel)
	require.Equal(t, "8080", conf.HTTPPort)
	require.Equal(t, 2, conf.AI.Depth)
	require.False(t, conf.AI.LogSearchStats)
}
