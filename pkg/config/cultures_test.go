package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

func TestDefaultCultureSetHasNamedEntries(t *testing.T) {
	set := DefaultCultureSet()
	require.NotEmpty(t, set.Entries)
	for _, e := range set.Entries {
		assert.NotEmpty(t, e.Name)
	}
}

func TestLoadCultureSetRejectsEmptySet(t *testing.T) {
	path := writeTempJSON(t, `{"cultures": []}`)

	_, err := LoadCultureSet(path)
	assert.ErrorIs(t, err, worldmodel.ErrMissingInput)
}

func TestLoadCultureSetParsesFile(t *testing.T) {
	path := writeTempJSON(t, `{"cultures": [{"name": "Ashveil", "base": 0, "odd": 0.8, "preference": {"op": "habitability"}}]}`)

	set, err := LoadCultureSet(path)
	require.NoError(t, err)
	require.Len(t, set.Entries, 1)
	assert.Equal(t, "Ashveil", set.Entries[0].Name)
}

func TestLoadNameBasesParsesFile(t *testing.T) {
	path := writeTempJSON(t, `{"bases": {"0": ["Ash", "Thorn"]}}`)

	bases, err := LoadNameBases(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ash", "Thorn"}, bases.Bases[0])
}
