package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/svcprofile/internal/config"
	"github.com/ppiankov/svcprofile/internal/identity"
)

func TestRunInit_WritesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	initForce = false

	require.NoError(t, runInit(nil, nil))

	configDir := filepath.Join(tmpDir, config.DirName)
	cfg, err := config.Load(filepath.Join(configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, "credentials.yaml"), cfg.CredentialsPath)
	assert.Equal(t, "127.0.0.1:50061", cfg.Listen)

	info, err := os.Stat(cfg.CredentialsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	registry, err := identity.Load(cfg.CredentialsPath)
	require.NoError(t, err)
	assert.True(t, registry.Verify("emp001", "123"))
}

func TestRunInit_NoOverwriteWithoutForce(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	configDir := filepath.Join(tmpDir, config.DirName)
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	sentinel := "# sentinel content\n"
	configFile := filepath.Join(configDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(sentinel), 0o644))

	initForce = false
	require.NoError(t, runInit(nil, nil))

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Equal(t, sentinel, string(data))

	_, err = os.Stat(filepath.Join(configDir, "credentials.yaml"))
	assert.NoError(t, err, "missing files are still created")
}

func TestRunInit_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	configDir := filepath.Join(tmpDir, config.DirName)
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	configFile := filepath.Join(configDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("# sentinel\n"), 0o644))

	initForce = true
	t.Cleanup(func() { initForce = false })
	require.NoError(t, runInit(nil, nil))

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultYAML(), string(data))
}
