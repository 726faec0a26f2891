package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/worldforge/atlas/pkg/pipeline"
	"github.com/worldforge/atlas/pkg/raster"
)

func newConvertHeightmapCmd(flags *globalFlags, v *viper.Viper) *cobra.Command {
	var seaLevelRaw, maxRaw float64
	var featureCount int

	cmd := &cobra.Command{
		Use:   "convert-heightmap [raster] <project>",
		Short: "Run the mesh and terrain stages",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rasterPath, projectPath string
			if len(args) == 2 {
				rasterPath, projectPath = args[0], args[1]
			} else {
				projectPath = args[0]
			}

			cfg, err := loadConfig(v, flags)
			if err != nil {
				return err
			}
			cat, err := loadBiomes(flags)
			if err != nil {
				return err
			}
			s, err := openProject(projectPath, flags.overwrite)
			if err != nil {
				return err
			}
			defer s.Close()

			run := pipeline.NewRun(cmd.Context(), cfg, cat, newLogger(flags))
			if err := run.Mesh(); err != nil {
				return err
			}

			if rasterPath != "" {
				f, err := os.Open(rasterPath)
				if err != nil {
					return fmt.Errorf("opening heightmap %s: %w", rasterPath, err)
				}
				defer f.Close()
				grid, err := raster.Decode(f)
				if err != nil {
					return fmt.Errorf("decoding heightmap %s: %w", rasterPath, err)
				}
				if err := run.TerrainFromHeightmap(grid, nil, seaLevelRaw, maxRaw); err != nil {
					return err
				}
			} else {
				if err := run.TerrainProcedural(featureCount); err != nil {
					return err
				}
			}

			if err := s.SaveWorld(cmd.Context(), run.World); err != nil {
				return err
			}
			return run.Persist(cmd.Context(), s)
		},
	}

	cmd.Flags().Float64Var(&seaLevelRaw, "sea-level-raw", 0, "raw heightmap value treated as sea level")
	cmd.Flags().Float64Var(&maxRaw, "max-raw", 255, "raw heightmap value treated as the highest peak")
	cmd.Flags().IntVar(&featureCount, "feature-count", 12, "great-circle feature count when no heightmap is given")
	return cmd
}
