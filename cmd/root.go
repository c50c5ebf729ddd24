package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/transitwatch/remitmap/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "remitmap",
	Short: "Derive the London TravelWatch remit boundary",
	Long:  "Builds a concave boundary polygon from in-remit station coordinates and partitions the Great Britain land mass into remit-area and rest-of-land GeoJSON features.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
