package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 64, cfg.HashMB)
	require.Equal(t, 6, cfg.DefaultDepth)
	require.Equal(t, 10, cfg.TempoBonus)
}

func TestLoadConfigEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lishex.toml")
	toml := "hash_mb = 128\ndefault_depth = 8\n"
	require.NoError(t, os.WriteFile(path, []byte(toml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 128, cfg.HashMB)
	require.Equal(t, 8, cfg.DefaultDepth)
	require.Equal(t, DefaultConfig().TempoBonus, cfg.TempoBonus, "fields absent from the file keep their default")
}

func TestLoadConfigMissingFileErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.Error(t, err)
}

func TestEvalConfigExtractsEvaluationKnobs(t *testing.T) {
	cfg := DefaultConfig()
	ec := cfg.EvalConfig()
	require.Equal(t, cfg.BishopPairMg, ec.BishopPairMg)
	require.Equal(t, cfg.BishopPairEg, ec.BishopPairEg)
	require.Equal(t, cfg.TempoBonus, ec.TempoBonus)
}
