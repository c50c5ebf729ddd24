package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/transitwatch/remitmap/internal/station"
)

var stationsPath string

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "Validate the station CSV and report accepted/skipped counts",
	RunE: func(_ *cobra.Command, _ []string) error {
		path := cfg.Paths.Stations
		if stationsPath != "" {
			path = stationsPath
		}

		list, stats, err := station.Load(path)
		if err != nil {
			return eris.Wrap(err, "stations")
		}

		zap.L().Info("stations valid",
			zap.String("path", path),
			zap.Int("accepted", stats.Accepted),
			zap.Int("skipped", stats.Skipped),
			zap.Int("excluded", stats.Excluded),
			zap.String("first", list[0].Name),
		)
		return nil
	},
}

func init() {
	stationsCmd.Flags().StringVar(&stationsPath, "stations", "", "station CSV path (overrides config)")
	rootCmd.AddCommand(stationsCmd)
}
