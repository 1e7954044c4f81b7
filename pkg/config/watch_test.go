package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReloadsOnFileChange(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AUTHSEAL_CONFIG_PATH", dir)

	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("realm: alpha\n"), 0o644))
	require.NoError(t, Reload())
	require.Equal(t, "alpha", Get().Realm)

	reloaded := make(chan *Config, 1)
	stop := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- Watch(func(c *Config) {
			select {
			case reloaded <- c:
			default:
			}
		}, stop)
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("realm: beta\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "beta", cfg.Realm)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not observed")
	}

	close(stop)
	require.NoError(t, <-done)
}
