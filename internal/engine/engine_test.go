package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowbmp/shadowbmp/internal/bitmap"
)

func TestClosestPairPrefersSquareDivisor(t *testing.T) {
	w, h := ClosestPair(36)
	assert.Equal(t, 6, w)
	assert.Equal(t, 6, h)
}

func TestClosestPairFallsBackToSingleRow(t *testing.T) {
	// 8 has no divisor in [3, floor(sqrt(8))]=[3,2], so it falls back.
	w, h := ClosestPair(8)
	assert.Equal(t, 8, w)
	assert.Equal(t, 1, h)
}

func TestFormShadowsAndRevealSecretRoundTrip(t *testing.T) {
	secret := make([]byte, 16)
	for i := range secret {
		secret[i] = byte((i * 17) % 251)
	}

	shadows, err := FormShadows(secret, 2, 3, 691)
	require.NoError(t, err)
	require.Len(t, shadows, 3)

	for i, s := range shadows {
		assert.Equal(t, uint16(i+1), s.BMPHeader.ShadowIndex)
		assert.Equal(t, uint16(691), s.BMPHeader.Seed)
		assert.Len(t, s.Pixels, 8)
	}

	out, err := RevealSecret([]*bitmap.Bitmap{shadows[0], shadows[2]}, 2, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, secret, out.Pixels)

	out2, err := RevealSecret(shadows, 2, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, secret, out2.Pixels)
}

func TestRevealSecretRejectsTooFewShadows(t *testing.T) {
	secret := make([]byte, 12)
	shadows, err := FormShadows(secret, 3, 4, 0)
	require.NoError(t, err)

	_, err = RevealSecret(shadows[:2], 3, 4, 4)
	require.Error(t, err)
}

func TestFormShadowsRejectsIndivisibleSecret(t *testing.T) {
	secret := make([]byte, 10)
	_, err := FormShadows(secret, 3, 4, 0)
	require.Error(t, err)
}

func TestFormShadowsTruncatedSecretScenario(t *testing.T) {
	secret := bitmap.New(4, 1, 0, 0)
	copy(secret.Pixels, []byte{255, 0, 128, 250})
	secret.TruncateGrayscale()
	assert.Equal(t, []byte{250, 0, 128, 250}, secret.Pixels)

	shadows, err := FormShadows(secret.Pixels, 2, 2, 0)
	require.NoError(t, err)

	out, err := RevealSecret(shadows, 2, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, secret.Pixels, out.Pixels)
}
