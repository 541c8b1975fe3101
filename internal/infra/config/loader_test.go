package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/relaunch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoader_Load_NoFileReturnsDefaults(t *testing.T) {
	loader := NewLoaderWithDir(t.TempDir())

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_EmptyDirReturnsDefaults(t *testing.T) {
	loader := NewLoaderWithDir("")

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTargetName, cfg.Target.Name)
	assert.Empty(t, loader.Path())
}

func TestLoader_Load_AllSections(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[target]
name = "Dropbox"

[commands]
terminate = "pkill -f {name}"
launch = "open -g -a {name}"

[log]
level = "debug"
`)

	cfg, err := NewLoaderWithDir(dir).Load()

	require.NoError(t, err)
	assert.Equal(t, "Dropbox", cfg.Target.Name)
	assert.Equal(t, "pkill -f {name}", cfg.Commands.Terminate)
	assert.Equal(t, "open -g -a {name}", cfg.Commands.Launch)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[commands]
launch = "my-launcher {name}"
`)

	cfg, err := NewLoaderWithDir(dir).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTargetName, cfg.Target.Name)
	assert.Empty(t, cfg.Commands.Terminate)
	assert.Equal(t, "my-launcher {name}", cfg.Commands.Launch)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
}

func TestLoader_Load_UnknownKeysProduceSortedWarnings(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
timeout = 5

[target]
name = "OneDrive"
pid = 42

[restart]
retries = 3

[log]
file = "x.log"
`)

	cfg, err := NewLoaderWithDir(dir).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{
		"unknown key in [log]: file",
		"unknown key in [target]: pid",
		"unknown key: timeout",
		"unknown section: restart",
	}, cfg.Warnings)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[target\nname = ")

	_, err := NewLoaderWithDir(dir).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ConfigFileName)
}

func TestLoader_Load_WrongValueTypeIsIgnored(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[target]
name = 42
`)

	cfg, err := NewLoaderWithDir(dir).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTargetName, cfg.Target.Name)
}

func TestLoader_Load_ReadsTemplateWrittenByManager(t *testing.T) {
	dir := t.TempDir()
	tmpl := domain.NewDefaultConfig()
	tmpl.Target.Name = "Google Drive"
	tmpl.Commands.Terminate = `pkill -x "{name}"`
	require.NoError(t, NewManagerWithDir(dir).InitConfig(tmpl))

	cfg, err := NewLoaderWithDir(dir).Load()

	require.NoError(t, err)
	assert.Equal(t, "Google Drive", cfg.Target.Name)
	assert.Equal(t, `pkill -x "{name}"`, cfg.Commands.Terminate)
	assert.Empty(t, cfg.Commands.Launch)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	assert.Equal(t, filepath.Join("/tmp/xdg-config", "relaunch"), DefaultConfigDir())
}

func TestDefaultStateDir_XDG(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")
	assert.Equal(t, filepath.Join("/tmp/xdg-state", "relaunch"), DefaultStateDir())
}

func TestDefaultConfigDir_HomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".config", "relaunch"), DefaultConfigDir())
}
