package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kridha-admin/stydev/internal/adapters/inbound/cli"
	"github.com/kridha-admin/stydev/internal/adapters/outbound/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".stydev.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "source: dir")
	assert.Contains(t, string(data), "cache:")
	assert.NotContains(t, string(data), "sqlite_path")
}

func TestInitCmd_GeneratedConfigLoads(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--source", "sqlite"})
	require.NoError(t, root.Execute())

	cfg, err := config.New().Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Registry.Source)
	assert.Equal(t, filepath.Join(tmpDir, ".stydev", "rules.db"), cfg.Registry.SQLitePath)
	assert.True(t, cfg.Cache.Enabled)
}

func TestInitCmd_UnknownSource(t *testing.T) {
	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", t.TempDir(), "--source", "postgres"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown registry source")
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".stydev.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".stydev.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--force"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".stydev.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "registry:")
}
