// Package stego implements the steganographic channel that hides a
// shadow's bytes in the least-significant bits of a carrier bitmap's
// pixel array, and retrieves them back out. The shadow's seed and
// shadow index travel alongside it in the carrier's reserved BMP
// header fields; the shadow's dimensions are not stored in the
// carrier and are derived from the secret's width, height, and k
// passed to Retrieve.
package stego

import (
	"fmt"

	"github.com/shadowbmp/shadowbmp/internal/bitmap"
	"github.com/shadowbmp/shadowbmp/internal/engine"
	"github.com/shadowbmp/shadowbmp/internal/shadowerr"
)

// Capacity reports how many shadow bytes a carrier with the given
// number of pixel bytes can hide: one shadow byte needs 8 carrier
// pixels, one bit per pixel's LSB.
func Capacity(carrierPixels int) int {
	return carrierPixels / 8
}

// Hide embeds shadow's pixel bytes into carrier's least-significant
// bits in place, and copies shadow's seed and shadow index into
// carrier's header. carrier must have capacity for 8*len(shadow.Pixels)
// bits.
func Hide(carrier, shadow *bitmap.Bitmap) error {
	if Capacity(len(carrier.Pixels)) < len(shadow.Pixels) {
		return shadowerr.Wrap(shadowerr.ErrInsufficientCapacity,
			fmt.Sprintf("carrier holds %d bytes, shadow needs %d", Capacity(len(carrier.Pixels)), len(shadow.Pixels)))
	}

	carrier.BMPHeader.Seed = shadow.BMPHeader.Seed
	carrier.BMPHeader.ShadowIndex = shadow.BMPHeader.ShadowIndex

	for i, b := range shadow.Pixels {
		for t := 0; t < 8; t++ {
			bit := (b >> (7 - t)) & 1
			idx := i*8 + t
			if bit == 1 {
				carrier.Pixels[idx] |= 1
			} else {
				carrier.Pixels[idx] &^= 1
			}
		}
	}

	return nil
}

// Retrieve reassembles the shadow hidden in carrier. width, height,
// and k must be the secret's own dimensions and threshold; the
// shadow's dimensions are derived from them the same way FormShadows
// derived them, so the retrieved shadow lines up with the ones
// produced during distribution even when the carrier has more
// capacity than the shadow strictly needs.
func Retrieve(carrier *bitmap.Bitmap, width int, height int32, k int) (*bitmap.Bitmap, error) {
	seed := carrier.BMPHeader.Seed
	shadowIndex := carrier.BMPHeader.ShadowIndex

	total := int(bitmap.PixelArraySize(width, height))
	shadowWidth, shadowHeight := engine.ClosestPair(total / k)
	shadow := bitmap.NewShadow(shadowWidth, shadowHeight, seed, shadowIndex)

	if Capacity(len(carrier.Pixels)) < len(shadow.Pixels) {
		return nil, shadowerr.Wrap(shadowerr.ErrInsufficientCapacity,
			fmt.Sprintf("carrier holds %d bytes, shadow needs %d", Capacity(len(carrier.Pixels)), len(shadow.Pixels)))
	}

	for i := range shadow.Pixels {
		var b byte
		for t := 0; t < 8; t++ {
			bit := carrier.Pixels[i*8+t] & 1
			b |= bit << (7 - t)
		}
		shadow.Pixels[i] = b
	}

	return shadow, nil
}
