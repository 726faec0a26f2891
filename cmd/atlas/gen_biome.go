package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/worldforge/atlas/pkg/pipeline"
)

func newGenBiomeCmd(flags *globalFlags, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "gen-biome <project>",
		Short: "Run the biome classification stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStage(cmd, flags, v, args[0], func(r *pipeline.Run) error {
				return r.Biome()
			})
		},
	}
}
