package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/worldforge/atlas/internal/worldlog"
	"github.com/worldforge/atlas/pkg/config"
	"github.com/worldforge/atlas/pkg/pipeline"
	"github.com/worldforge/atlas/pkg/store"
)

// runStage loads a project's persisted world, runs stage against it,
// then re-persists the world snapshot and public vector layers.
// Subcommands other than convert-heightmap and genesis share this shape.
func runStage(cmd *cobra.Command, flags *globalFlags, v *viper.Viper, projectPath string, stage func(r *pipeline.Run) error) error {
	cfg, err := loadConfig(v, flags)
	if err != nil {
		return err
	}
	cat, err := loadBiomes(flags)
	if err != nil {
		return err
	}
	s, err := store.Open(projectPath)
	if err != nil {
		return err
	}
	defer s.Close()

	world, err := s.LoadWorld(cmd.Context())
	if err != nil {
		return err
	}

	run := pipeline.NewRun(cmd.Context(), cfg, cat, newLogger(flags))
	run.World = world

	if err := stage(run); err != nil {
		return err
	}

	if err := s.SaveWorld(cmd.Context(), run.World); err != nil {
		return err
	}
	return run.Persist(cmd.Context(), s)
}

func loadConfig(v *viper.Viper, flags *globalFlags) (config.RuntimeConfig, error) {
	cfg, err := config.Load(v, flags.config)
	if err != nil {
		return cfg, err
	}
	if flags.seed != 0 {
		cfg.Seed = flags.seed
	}
	return cfg, nil
}

func loadBiomes(flags *globalFlags) (*config.BiomeCatalog, error) {
	if flags.biomes == "" {
		return config.DefaultBiomeCatalog(), nil
	}
	return config.LoadBiomeCatalog(flags.biomes)
}

func loadCultureSet(flags *globalFlags) (*config.CultureSet, error) {
	if flags.cultureSet == "" {
		return config.DefaultCultureSet(), nil
	}
	return config.LoadCultureSet(flags.cultureSet)
}

func openProject(path string, overwrite bool) (*store.Store, error) {
	if overwrite {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("overwriting project %s: %w", path, err)
		}
	}
	return store.Open(path)
}

func newLogger(flags *globalFlags) zerolog.Logger {
	return worldlog.New(os.Stderr, flags.verbose)
}
