// Package engine implements the Thien-Lin secret-sharing engine: it
// evaluates per-section polynomials over GF(251) to produce shadow
// pixels, and inverts that evaluation via Gauss-Jordan elimination to
// recover the original secret from any k shadows.
package engine

import (
	"fmt"
	"math"

	"github.com/shadowbmp/shadowbmp/internal/bitmap"
	"github.com/shadowbmp/shadowbmp/internal/gf251"
	"github.com/shadowbmp/shadowbmp/internal/shadowerr"
)

// ClosestPair picks shadow dimensions (width, height) for a target
// pixel count total, shaped to be as square as possible: it searches
// divisors of total from floor(sqrt(total)) down to 3 and returns the
// first one found. If none divides total evenly, it falls back to a
// single row of width total.
func ClosestPair(total int) (width, height int) {
	for y := int(math.Sqrt(float64(total))); y >= 3; y-- {
		if total%y == 0 {
			return y, total / y
		}
	}
	return total, 1
}

// FormShadows partitions secret into k-byte sections and evaluates,
// for each of the n shadow indices x in [1, n], the pixel
// sum(c_i * x^i for i in [0, k)) mod 251 for every section's
// coefficients c_0..c_{k-1}. secret's length must be a multiple of k.
func FormShadows(secret []byte, k, n int, seed uint16) ([]*bitmap.Bitmap, error) {
	total := len(secret)
	if total%k != 0 {
		return nil, shadowerr.Wrap(shadowerr.ErrInvalidSecretSize,
			fmt.Sprintf("secret size %d is not divisible by k=%d", total, k))
	}

	width, height := ClosestPair(total / k)

	shadows := make([]*bitmap.Bitmap, n)
	for i := 0; i < n; i++ {
		shadows[i] = bitmap.NewShadow(width, height, seed, uint16(i+1))
	}

	sections := total / k
	for j := 0; j < sections; j++ {
		coeff := secret[j*k : j*k+k]
		for i := 0; i < n; i++ {
			shadows[i].Pixels[j] = evaluateSection(coeff, i+1)
		}
	}

	return shadows, nil
}

// evaluateSection computes sum(coeff[i] * x^i) mod 251.
func evaluateSection(coeff []byte, x int) byte {
	var sum int64
	for i, c := range coeff {
		sum += int64(c) * int64(gf251.Pow(byte(x), i))
	}
	return byte(sum % gf251.Prime)
}

// RevealSecret recovers a secret's pixel array from any k shadows,
// given the secret's own dimensions (used only to size and tag the
// reconstructed bitmap; the shadows carry all the data needed to
// solve for it). Every shadow must have a distinct, nonzero
// ShadowIndex and the same pixel count.
func RevealSecret(shadows []*bitmap.Bitmap, k int, width int, height int32) (*bitmap.Bitmap, error) {
	if len(shadows) < k {
		return nil, shadowerr.Wrap(shadowerr.ErrInsufficientShadows,
			fmt.Sprintf("need %d shadows, got %d", k, len(shadows)))
	}
	shadows = shadows[:k]

	pixelsPerShadow := len(shadows[0].Pixels)
	for _, s := range shadows {
		if s.BMPHeader.ShadowIndex == 0 {
			return nil, shadowerr.Wrap(shadowerr.ErrInsufficientShadows, "shadow index is zero")
		}
		if len(s.Pixels) != pixelsPerShadow {
			return nil, shadowerr.Wrap(shadowerr.ErrInsufficientShadows, "shadows have mismatched sizes")
		}
	}

	out := bitmap.New(width, height, shadows[0].BMPHeader.Seed, 0)
	if len(out.Pixels) != pixelsPerShadow*k {
		return nil, shadowerr.Wrap(shadowerr.ErrInvalidSecretSize,
			"secret dimensions do not match shadow capacity for this k")
	}

	for p := 0; p < pixelsPerShadow; p++ {
		m := gf251.NewMatrix(k)
		for row, s := range shadows {
			x := int(s.BMPHeader.ShadowIndex)
			for col := 0; col < k; col++ {
				m[row][col] = gf251.Pow(byte(x), col)
			}
			m[row][k] = s.Pixels[p]
		}

		c, err := gf251.Solve(m)
		if err != nil {
			return nil, shadowerr.Wrap(shadowerr.ErrInsufficientShadows, "could not solve for secret coefficients")
		}

		for r := 0; r < k; r++ {
			out.Pixels[p*k+r] = c[r]
		}
	}

	return out, nil
}
