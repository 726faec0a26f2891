package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// globalFlags are the persistent flags every subcommand accepts: a
// project path positional plus --overwrite/--seed/--config.
type globalFlags struct {
	overwrite  bool
	seed       uint64
	config     string
	verbose    bool
	biomes     string
	cultureSet string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	v := viper.New()

	root := &cobra.Command{
		Use:           "atlas",
		Short:         "Generate and evolve a fantasy-style world map",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&flags.overwrite, "overwrite", false, "overwrite the project's existing stage output")
	root.PersistentFlags().Uint64Var(&flags.seed, "seed", 0, "override the configured PRNG seed (0 = use config)")
	root.PersistentFlags().StringVar(&flags.config, "config", "", "path to a runtime config JSON file")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")
	root.PersistentFlags().StringVar(&flags.biomes, "biomes", "", "path to a biome catalog JSON file (built-in default if empty)")
	root.PersistentFlags().StringVar(&flags.cultureSet, "culture-set", "", "path to a culture set JSON file (built-in default if empty)")

	root.AddCommand(
		newConvertHeightmapCmd(flags, v),
		newGenClimateCmd(flags, v),
		newGenWaterCmd(flags, v),
		newGenBiomeCmd(flags, v),
		newGenPeoplePopulationCmd(flags, v),
		newGenCulturesCmd(flags, v),
		newGenesisCmd(flags, v),
	)
	return root
}
