package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	// An empty path falls back to ./raffled.toml, which is absent here.
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:5005", cfg.Server.ListenAddr)
	require.Equal(t, uint64(890880), cfg.Rent.BaseLamports)
}

func TestLoadOverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raffled.toml")
	content := `
program_id = "11111111111111111111111111111111"

[rpc]
listen_addr = "0.0.0.0:9000"

[rent]
base_lamports = 1000
lamports_per_byte = 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:9000", cfg.Server.ListenAddr)
	require.Equal(t, uint64(1000), cfg.Rent.BaseLamports)
	require.Equal(t, uint64(10), cfg.Rent.LamportsPerByte)
	require.Equal(t, path, cfg.GetConfigPath())
}

func TestLoadRejectsMalformedProgramID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raffled.toml")
	require.NoError(t, os.WriteFile(path, []byte(`program_id = "not-base58!!"`), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadExplicitMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
