package main

import (
	"github.com/spf13/cobra"

	"github.com/shadowbmp/shadowbmp/internal/config"
	"github.com/shadowbmp/shadowbmp/internal/logging"
	"github.com/shadowbmp/shadowbmp/internal/pipeline"
)

var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "recover a secret bitmap from k shadows hidden inside carrier bitmaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadFile(cfg); err != nil {
			return err
		}
		if err := pipeline.Validate(cfg, true); err != nil {
			return err
		}

		log := logging.New(cfg.Debug)
		return pipeline.Recover(cfg, log)
	},
}

func init() {
	recoverCmd.Flags().StringVar(&cfg.Secret, "secret", "", "destination path for the recovered bitmap")
	recoverCmd.Flags().IntVarP(&cfg.K, "k", "k", 0, "threshold: shadows needed to reconstruct")
	recoverCmd.Flags().IntVarP(&cfg.Width, "w", "w", 0, "recovered image width")
	var height int
	recoverCmd.Flags().IntVarP(&height, "h", "h", 0, "recovered image height")
	recoverCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		cfg.Height = int32(height)
		return nil
	}

	recoverCmd.MarkFlagRequired("secret")
	recoverCmd.MarkFlagRequired("k")
	recoverCmd.MarkFlagRequired("w")
	recoverCmd.MarkFlagRequired("h")
}
