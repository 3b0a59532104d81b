// Package config holds the parameters shared by the distribute and
// recover subcommands. Values are bound by Cobra flags and may be
// overlaid from an optional YAML config file via Viper, following the
// same PersistentFlags-plus-config-file pattern go-keychain's CLI uses
// for its own backend configuration.
package config

import (
	"fmt"

	"github.com/shadowbmp/shadowbmp/internal/bitmap"
	"github.com/spf13/viper"
)

// Config holds the parameters needed to run either pipeline direction.
type Config struct {
	ConfigFile string

	Secret string
	Dir    string

	K int
	N int

	Width  int
	Height int32

	Seed    uint16
	Permute bool

	Debug bool
}

// Default returns a Config with the CLI surface's documented defaults:
// --dir defaults to "./", -s defaults to 691, permutation is on.
func Default() *Config {
	return &Config{
		Dir:     "./",
		Seed:    bitmap.DefaultSeed,
		Permute: true,
	}
}

// LoadFile overlays values from cfg.ConfigFile, when set, onto cfg
// using Viper. It fills in dir, seed, k, and n only where the field
// still holds its default ("./", DefaultSeed, or zero), so a flag set
// to any other value takes precedence over the file; a flag set
// explicitly to the default value is overridden by the file.
func LoadFile(cfg *Config) error {
	if cfg.ConfigFile == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(cfg.ConfigFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", cfg.ConfigFile, err)
	}

	if cfg.Dir == "./" && v.IsSet("dir") {
		cfg.Dir = v.GetString("dir")
	}
	if cfg.Seed == bitmap.DefaultSeed && v.IsSet("seed") {
		cfg.Seed = uint16(v.GetUint32("seed"))
	}
	if cfg.K == 0 && v.IsSet("k") {
		cfg.K = v.GetInt("k")
	}
	if cfg.N == 0 && v.IsSet("n") {
		cfg.N = v.GetInt("n")
	}

	return nil
}

// Validate applies the CLI surface's shared parameter rules: 2 <= k <= n.
func (c *Config) Validate() error {
	if c.K < 2 {
		return fmt.Errorf("k must be >= 2, got %d", c.K)
	}
	if c.N != 0 && c.K > c.N {
		return fmt.Errorf("k (%d) must be <= n (%d)", c.K, c.N)
	}
	return nil
}
