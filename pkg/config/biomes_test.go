package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

func writeTempJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultBiomeCatalogIndexOf(t *testing.T) {
	cat := DefaultBiomeCatalog()
	idx := cat.IndexOf("Grassland")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, "Grassland", cat.Biomes[idx].KeyName)
	assert.Equal(t, -1, cat.IndexOf("NoSuchBiome"))
}

func TestLoadBiomeCatalogRejectsEmptyCatalog(t *testing.T) {
	path := writeTempJSON(t, `{"biomes": [], "matrix": []}`)

	_, err := LoadBiomeCatalog(path)
	assert.ErrorIs(t, err, worldmodel.ErrMissingInput)
}

func TestLoadBiomeCatalogParsesFile(t *testing.T) {
	path := writeTempJSON(t, `{"biomes": [{"KeyName": "Grassland", "Habitability": 30, "MovementCost": 2}]}`)

	cat, err := LoadBiomeCatalog(path)
	require.NoError(t, err)
	require.Len(t, cat.Biomes, 1)
	assert.Equal(t, "Grassland", cat.Biomes[0].KeyName)
}
