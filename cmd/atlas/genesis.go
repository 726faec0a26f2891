package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/worldforge/atlas/pkg/pipeline"
)

func newGenesisCmd(flags *globalFlags, v *viper.Viper) *cobra.Command {
	var featureCount int

	cmd := &cobra.Command{
		Use:   "genesis <project>",
		Short: "Run the entire pipeline from scratch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := args[0]

			cfg, err := loadConfig(v, flags)
			if err != nil {
				return err
			}
			cat, err := loadBiomes(flags)
			if err != nil {
				return err
			}
			set, err := loadCultureSet(flags)
			if err != nil {
				return err
			}
			s, err := openProject(projectPath, flags.overwrite)
			if err != nil {
				return err
			}
			defer s.Close()

			run := pipeline.NewRun(cmd.Context(), cfg, cat, newLogger(flags))
			stages := []func() error{
				run.Mesh,
				func() error { return run.TerrainProcedural(featureCount) },
				run.Climate,
				run.Hydrology,
				run.Biome,
				run.Habitability,
				func() error { return run.Culture(set) },
			}
			for _, stage := range stages {
				if err := stage(); err != nil {
					return err
				}
			}

			if err := s.SaveWorld(cmd.Context(), run.World); err != nil {
				return err
			}
			return run.Persist(cmd.Context(), s)
		},
	}

	cmd.Flags().IntVar(&featureCount, "feature-count", 12, "great-circle feature count for procedural terrain")
	return cmd
}
