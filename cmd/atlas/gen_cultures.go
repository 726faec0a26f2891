package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/worldforge/atlas/pkg/pipeline"
)

func newGenCulturesCmd(flags *globalFlags, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "gen-cultures <project>",
		Short: "Run the culture seeding and expansion stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadCultureSet(flags)
			if err != nil {
				return err
			}
			return runStage(cmd, flags, v, args[0], func(r *pipeline.Run) error {
				return r.Culture(set)
			})
		},
	}
}
