package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Run from an empty directory so no stray tick.yaml is picked up.
	chdir(t, t.TempDir())

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", config.Server.Addr)
	assert.Equal(t, 10, config.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, "sqlite3", config.Database.Driver)
	assert.Equal(t, "todo.db", config.Database.DSN)
	assert.Equal(t, 25, config.Database.MaxConnections)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tick.yaml")
	data := `server:
  addr: "0.0.0.0:9090"
  shutdown_timeout_seconds: 5
database:
  driver: postgres
  dsn: "postgres://localhost/todos?sslmode=disable"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", config.Server.Addr)
	assert.Equal(t, 5, config.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, "postgres", config.Database.Driver)
	assert.Equal(t, "postgres://localhost/todos?sslmode=disable", config.Database.DSN)
	assert.Equal(t, 25, config.Database.MaxConnections, "unset fields fall back to defaults")
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("unreadable file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tick.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: ["), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

// chdir switches the working directory for the duration of the test,
// matching the semantics of testing.T.Chdir from Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
}

func TestGetConfigPath(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("env var wins", func(t *testing.T) {
		t.Setenv("TICK_CONFIG", "/etc/tick/tick.yaml")
		assert.Equal(t, "/etc/tick/tick.yaml", GetConfigPath())
	})

	t.Run("falls back to local file", func(t *testing.T) {
		t.Setenv("TICK_CONFIG", "")
		require.NoError(t, os.WriteFile("tick.yaml", []byte(""), 0644))
		assert.Equal(t, "tick.yaml", GetConfigPath())
	})
}
