package main

import (
	"github.com/spf13/cobra"

	"github.com/shadowbmp/shadowbmp/internal/config"
	"github.com/shadowbmp/shadowbmp/internal/logging"
	"github.com/shadowbmp/shadowbmp/internal/pipeline"
)

var distributeCmd = &cobra.Command{
	Use:   "distribute",
	Short: "split a secret bitmap into n shadows hidden inside carrier bitmaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadFile(cfg); err != nil {
			return err
		}
		if err := pipeline.Validate(cfg, false); err != nil {
			return err
		}

		log := logging.New(cfg.Debug)
		return pipeline.Distribute(cfg, log)
	},
}

func init() {
	distributeCmd.Flags().StringVar(&cfg.Secret, "secret", "", "secret bitmap to split")
	distributeCmd.Flags().IntVarP(&cfg.K, "k", "k", 0, "threshold: shares needed to reconstruct (2 <= k <= n)")
	distributeCmd.Flags().IntVarP(&cfg.N, "n", "n", 0, "total shadows to produce (defaults to the number of files in --dir)")

	distributeCmd.MarkFlagRequired("secret")
	distributeCmd.MarkFlagRequired("k")
}
