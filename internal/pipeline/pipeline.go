// Package pipeline wires the bitmap codec, permutation, secret-sharing
// engine, and steganographic channel into the distribute and recover
// data flows described by the system's data-flow overview: load,
// transform, and store, in strictly sequential, single-threaded steps.
package pipeline

import (
	"fmt"
	"hash/adler32"

	"github.com/google/uuid"

	"github.com/shadowbmp/shadowbmp/internal/bitmap"
	"github.com/shadowbmp/shadowbmp/internal/config"
	"github.com/shadowbmp/shadowbmp/internal/engine"
	"github.com/shadowbmp/shadowbmp/internal/fsiter"
	"github.com/shadowbmp/shadowbmp/internal/logging"
	"github.com/shadowbmp/shadowbmp/internal/permute"
	"github.com/shadowbmp/shadowbmp/internal/shadowerr"
	"github.com/shadowbmp/shadowbmp/internal/stego"
)

// Distribute implements the distribute data flow: load the secret,
// truncate it to GF(251)'s range, optionally permute it, split it
// into n shadows, then hide each shadow inside a carrier bitmap found
// in cfg.Dir and write the result back over the carrier file.
func Distribute(cfg *config.Config, log *logging.Logger) error {
	runID := uuid.New()
	log.Info("starting distribute", "run", runID, "k", cfg.K, "n", cfg.N, "secret", cfg.Secret)

	secret, err := bitmap.Read(cfg.Secret)
	if err != nil {
		return err
	}

	n := cfg.N
	if n == 0 {
		n, err = fsiter.CountFiles(cfg.Dir)
		if err != nil {
			return err
		}
	}
	if cfg.K > n || cfg.K < 2 || n < 2 {
		return shadowerr.Wrap(shadowerr.ErrInvalidArguments, "k and n must satisfy 2 <= k <= n")
	}

	carrierPaths, err := fsiter.EnumerateCarriers(cfg.Dir, cfg.K, n)
	if err != nil {
		return err
	}

	secret.TruncateGrayscale()
	log.Debug("secret checksum before split", "run", runID, "adler32", adler32.Checksum(secret.Pixels))

	if cfg.Permute {
		permute.Permute(secret.Pixels, cfg.Seed)
	}

	shadows, err := engine.FormShadows(secret.Pixels, cfg.K, n, cfg.Seed)
	if err != nil {
		return err
	}

	for i, path := range carrierPaths {
		carrier, err := bitmap.Read(path)
		if err != nil {
			return err
		}
		if err := stego.Hide(carrier, shadows[i]); err != nil {
			return err
		}
		if err := carrier.Write(path); err != nil {
			return err
		}
		log.Info("embedded shadow", "run", runID, "carrier", path, "shadow_index", shadows[i].BMPHeader.ShadowIndex)
	}

	log.Info("distribute complete", "run", runID, "carriers", len(carrierPaths))
	return nil
}

// Recover implements the recover data flow: load k carriers from
// cfg.Dir holding valid shadows, retrieve each shadow, solve for the
// secret's pixels, optionally reverse the permutation, and write the
// reconstructed secret to cfg.Secret.
func Recover(cfg *config.Config, log *logging.Logger) error {
	runID := uuid.New()
	log.Info("starting recover", "run", runID, "k", cfg.K, "width", cfg.Width, "height", cfg.Height)

	secretSize := bitmap.PixelArraySize(cfg.Width, cfg.Height)

	shadowPaths, err := fsiter.EnumerateShadows(cfg.Dir, cfg.K, secretSize)
	if err != nil {
		return err
	}

	shadows := make([]*bitmap.Bitmap, 0, cfg.K)
	for _, path := range shadowPaths {
		carrier, err := bitmap.Read(path)
		if err != nil {
			return err
		}
		shadow, err := stego.Retrieve(carrier, cfg.Width, cfg.Height, cfg.K)
		if err != nil {
			return err
		}
		shadows = append(shadows, shadow)
		log.Info("retrieved shadow", "run", runID, "carrier", path, "shadow_index", shadow.BMPHeader.ShadowIndex)
	}

	secret, err := engine.RevealSecret(shadows, cfg.K, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	if cfg.Permute {
		permute.Unpermute(secret.Pixels, cfg.Seed)
	}

	log.Debug("secret checksum after recovery", "run", runID, "adler32", adler32.Checksum(secret.Pixels))

	if err := secret.Write(cfg.Secret); err != nil {
		return err
	}

	log.Info("recover complete", "run", runID, "output", cfg.Secret)
	return nil
}

// Validate is a convenience wrapper used by the CLI to surface a
// single human-readable diagnostic for an invalid k/n/width/height
// combination before doing any file I/O.
func Validate(cfg *config.Config, recovering bool) error {
	if err := cfg.Validate(); err != nil {
		return shadowerr.Wrap(shadowerr.ErrInvalidArguments, err.Error())
	}
	if recovering && (cfg.Width <= 0 || cfg.Height == 0) {
		return shadowerr.Wrap(shadowerr.ErrInvalidArguments,
			fmt.Sprintf("recover requires a positive width and a nonzero height, got %dx%d", cfg.Width, cfg.Height))
	}
	return nil
}
