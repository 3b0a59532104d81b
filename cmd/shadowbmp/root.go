package main

import (
	"github.com/spf13/cobra"

	"github.com/shadowbmp/shadowbmp/internal/config"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "shadowbmp",
	Short: "shadowbmp splits and recovers 8-bpp BMP secrets via (k, n) visual secret sharing",
	Long: `shadowbmp implements a (k, n) visual secret-sharing scheme for 8-bit
grayscale bitmap images. A secret image is split into n shadow images,
steganographically hidden inside n carrier bitmaps, such that any k of
them reconstruct the secret and fewer than k reveal nothing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "config file (default is none)")
	rootCmd.PersistentFlags().StringVar(&cfg.Dir, "dir", "./", "carriers directory (distribute) or shadows directory (recover)")
	rootCmd.PersistentFlags().Uint16VarP(&cfg.Seed, "seed", "s", 691, "permutation seed")
	rootCmd.PersistentFlags().BoolVar(&cfg.Permute, "permute", true, "apply the positional pixel scramble")
	rootCmd.PersistentFlags().BoolVar(&cfg.Debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(distributeCmd, recoverCmd, inspectCmd)
}
