package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldforge/atlas/pkg/config"
	"github.com/worldforge/atlas/pkg/store"
)

func newTestRun(t *testing.T) *Run {
	t.Helper()
	cfg := config.Defaults()
	cfg.Cells = 150
	return NewRun(context.Background(), cfg, config.DefaultBiomeCatalog(), zerolog.Nop())
}

func TestRunFullSequenceProducesPopulatedCultures(t *testing.T) {
	r := newTestRun(t)

	require.NoError(t, r.Mesh())
	require.NoError(t, r.TerrainProcedural(16))
	require.NoError(t, r.Climate())
	require.NoError(t, r.Hydrology())
	require.NoError(t, r.Biome())
	require.NoError(t, r.Habitability())
	require.NoError(t, r.Culture(config.DefaultCultureSet()))

	assert.Greater(t, r.World.N, r.Config.Cells/2)
	assignedAny := false
	for i := 0; i < r.World.N; i++ {
		if r.World.CultureID[i] >= 0 {
			assignedAny = true
			break
		}
	}
	assert.True(t, assignedAny)

	s, err := store.Open(filepath.Join(t.TempDir(), "world.sqlite"))
	require.NoError(t, err)
	defer s.Close()
	assert.NoError(t, r.Persist(context.Background(), s))
}

func TestRunRejectsStagesBeforeMesh(t *testing.T) {
	r := newTestRun(t)
	err := r.Climate()
	assert.Error(t, err)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := config.Defaults()
	r := NewRun(ctx, cfg, config.DefaultBiomeCatalog(), zerolog.Nop())

	err := r.Mesh()
	assert.ErrorIs(t, err, ErrCancelled)
}
