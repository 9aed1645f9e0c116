package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialOverride(t *testing.T) {
	cfg, err := Load(writeTempFile(t, "config.yaml", "log_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:50061", cfg.Listen)
	assert.Empty(t, cfg.CredentialsPath)
}

func TestLoadResolvesRelativeCredentials(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "credentials_path: creds.yaml\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "creds.yaml"), cfg.CredentialsPath)

	cfg, err = Load(writeTempFile(t, "config.yaml", "credentials_path: /etc/svcprofile/creds.yaml\n"))
	require.NoError(t, err)
	assert.Equal(t, "/etc/svcprofile/creds.yaml", cfg.CredentialsPath)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeTempFile(t, "config.yaml", "log_level: [oops"))
	assert.Error(t, err)
}

func TestDefaultYAMLParses(t *testing.T) {
	path := writeTempFile(t, "config.yaml", DefaultYAML())
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "credentials.yaml"), cfg.CredentialsPath)
}
