package permute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTripIdentityBytes(t *testing.T) {
	n := 16
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}

	permuted := append([]byte(nil), data...)
	Permute(permuted, 691)
	assert.NotEqual(t, data, permuted)

	restored := append([]byte(nil), permuted...)
	Unpermute(restored, 691)
	assert.Equal(t, data, restored)
}

func TestRoundTripVariousSeedsAndSizes(t *testing.T) {
	seeds := []uint16{0, 1, 691, 65535, 12345}
	sizes := []int{2, 3, 4, 5, 16, 17, 100, 255}

	for _, seed := range seeds {
		for _, n := range sizes {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte(i)
			}

			permuted := append([]byte(nil), data...)
			Permute(permuted, seed)

			restored := append([]byte(nil), permuted...)
			Unpermute(restored, seed)

			assert.Equal(t, data, restored, "seed=%d n=%d", seed, n)
		}
	}
}
