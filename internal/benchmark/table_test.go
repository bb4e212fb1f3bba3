package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table, err := DefaultTable()
	require.NoError(t, err)

	assert.InDelta(t, 0.602, table.Factors["air"], 1e-9)
	assert.InDelta(t, 0.016, table.Factors["sea"], 1e-9)
	assert.InDelta(t, 0.096, table.Factors["road"], 1e-9)
	assert.InDelta(t, 0.028, table.Factors["rail"], 1e-9)

	assert.InDelta(t, 1.0, table.RouteClasses["domestic"], 1e-9)
	assert.InDelta(t, 1.15, table.RouteClasses["international"], 1e-9)
	assert.InDelta(t, 1.3, table.RouteClasses["express"], 1e-9)

	assert.NotEmpty(t, table.Routes)
}

func TestLoadTableNormalizesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmarks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
factors:
  AIR: 0.7
route_classes:
  Express: 1.5
`), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, table.Factors["air"], 1e-9)
	assert.InDelta(t, 1.5, table.RouteClasses["express"], 1e-9)
}

func TestLoadTableRejectsEmptyFactors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmarks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`route_classes: {domestic: 1.0}`), 0o644))

	_, err := LoadTable(path)
	assert.Error(t, err)
}
