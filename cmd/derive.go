package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/transitwatch/remitmap/internal/hull"
	"github.com/transitwatch/remitmap/internal/land"
	"github.com/transitwatch/remitmap/internal/pipeline"
)

var (
	deriveStationsPath string
	deriveLandPath     string
	deriveLandFormat   string
	deriveOutPath      string
	deriveAlpha        float64
	deriveSmoothRadius float64
	deriveSimplifyTol  float64
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Run the full boundary derivation and write the two-feature output",
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := pipeline.Params{
			StationsPath: cfg.Paths.Stations,
			LandPath:     cfg.Paths.Land,
			LandFormat:   land.Format(cfg.Land.Format),
			OutPath:      cfg.Paths.Out,
			Hull: hull.Params{
				Alpha:             cfg.Hull.Alpha,
				SmoothRadius:      cfg.Hull.SmoothRadius,
				SimplifyTolerance: cfg.Hull.SimplifyTolerance,
				QuadSegments:      cfg.Hull.QuadSegments,
			},
		}
		if deriveStationsPath != "" {
			p.StationsPath = deriveStationsPath
		}
		if deriveLandPath != "" {
			p.LandPath = deriveLandPath
		}
		if deriveLandFormat != "" {
			p.LandFormat = land.Format(deriveLandFormat)
		}
		if deriveOutPath != "" {
			p.OutPath = deriveOutPath
		}
		if cmd.Flags().Changed("alpha") {
			p.Hull.Alpha = deriveAlpha
		}
		if cmd.Flags().Changed("smooth-radius") {
			p.Hull.SmoothRadius = deriveSmoothRadius
		}
		if cmd.Flags().Changed("simplify-tolerance") {
			p.Hull.SimplifyTolerance = deriveSimplifyTol
		}

		res, err := pipeline.Run(cmd.Context(), p)
		if err != nil {
			return eris.Wrap(err, "derive")
		}

		zap.L().Info("derive complete",
			zap.String("run_id", res.RunID),
			zap.Int("stations", res.Stations.Accepted),
			zap.Int("skipped", res.Stations.Skipped),
			zap.Bool("remit_empty", res.RemitEmpty),
			zap.String("out", res.OutPath),
		)
		return nil
	},
}

func init() {
	deriveCmd.Flags().StringVar(&deriveStationsPath, "stations", "", "station CSV path (overrides config)")
	deriveCmd.Flags().StringVar(&deriveLandPath, "land", "", "land-mass file path (overrides config)")
	deriveCmd.Flags().StringVar(&deriveLandFormat, "format", "", "land-mass format: geojson or shapefile (overrides config)")
	deriveCmd.Flags().StringVar(&deriveOutPath, "out", "", "output GeoJSON path (overrides config)")
	deriveCmd.Flags().Float64Var(&deriveAlpha, "alpha", 0, "alpha-shape tightness (overrides config)")
	deriveCmd.Flags().Float64Var(&deriveSmoothRadius, "smooth-radius", 0, "buffer-close radius in degrees (overrides config)")
	deriveCmd.Flags().Float64Var(&deriveSimplifyTol, "simplify-tolerance", 0, "simplify tolerance in degrees (overrides config)")
	rootCmd.AddCommand(deriveCmd)
}
