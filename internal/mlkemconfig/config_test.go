package mlkemconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itzmeanjan/ml-kem-sub000/internal/mlkemconfig"
)

func TestDefault(t *testing.T) {
	cfg := mlkemconfig.Default()
	require.Equal(t, "ML-KEM-768", cfg.ParameterSet)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mlkemtool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parameter_set: ML-KEM-1024\n"), 0o600))

	cfg, err := mlkemconfig.Load(path)
	require.NoError(t, err)
	require.Equal(t, "ML-KEM-1024", cfg.ParameterSet)
	require.Equal(t, "info", cfg.LogLevel) // kept from Default()
}

func TestLoadMissingFile(t *testing.T) {
	_, err := mlkemconfig.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
