package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// isolate points the global config at an empty temp dir and runs the test
// from another empty temp dir, so neither real config file is read.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	origWd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmpDir))
	return tmpDir
}

func TestGlobalPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	require.Equal(t, "/custom/config/sitewizard/sitewizard.yml", GlobalPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	got := GlobalPath()
	require.True(t, filepath.IsAbs(got), "GlobalPath() should be absolute, got %v", got)
	require.Equal(t, "sitewizard.yml", filepath.Base(got))
}

func TestProjectPath(t *testing.T) {
	require.Equal(t, "sitewizard.yml", ProjectPath())
}

func TestExists(t *testing.T) {
	isolate(t)

	t.Run("no config exists", func(t *testing.T) {
		require.False(t, Exists())
	})

	t.Run("project config exists", func(t *testing.T) {
		require.NoError(t, os.WriteFile(ProjectPath(), []byte("api_url: http://x\n"), 0644))
		defer func() { _ = os.Remove(ProjectPath()) }()
		require.True(t, Exists())
	})

	t.Run("global config exists", func(t *testing.T) {
		require.NoError(t, WriteGlobal(Defaults()))
		defer func() { _ = os.Remove(GlobalPath()) }()
		require.True(t, Exists())
	})
}

func TestLoad_NoConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)

	global := Defaults()
	global.APIURL = "http://global.test/api/v1"
	global.Timeout = 30 * time.Second
	global.ExportDir = "global-sites"
	require.NoError(t, WriteGlobal(global))

	require.NoError(t, os.WriteFile(ProjectPath(), []byte("api_url: http://project.test/api/v1\n"), 0644))

	t.Setenv("SITEWIZARD_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://project.test/api/v1", cfg.APIURL, "project overrides global")
	require.Equal(t, 30*time.Second, cfg.Timeout, "global overrides defaults")
	require.Equal(t, "global-sites", cfg.ExportDir)
	require.Equal(t, "debug", cfg.LogLevel, "env overrides files")
}

func TestWriteProject_RoundTrip(t *testing.T) {
	isolate(t)

	cfg := Defaults()
	cfg.APIURL = "https://prices.example/api/v1"
	cfg.LogFile = "wizard.log"
	require.NoError(t, WriteProject(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"https", func(c *Config) { c.APIURL = "https://prices.example/api/v1" }, false},
		{"relative url", func(c *Config) { c.APIURL = "/api/v1" }, true},
		{"unsupported scheme", func(c *Config) { c.APIURL = "ftp://prices.example" }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
