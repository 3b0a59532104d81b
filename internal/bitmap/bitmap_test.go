package bitmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPalette(t *testing.T) {
	b := New(4, 4, 0, 0)
	for i := 0; i < 256; i++ {
		j := i * 4
		assert.Equal(t, byte(i), b.Palette[j])
		assert.Equal(t, byte(i), b.Palette[j+1])
		assert.Equal(t, byte(i), b.Palette[j+2])
		assert.Equal(t, byte(0), b.Palette[j+3])
	}
}

func TestPixelArrayOffsetIsFixed(t *testing.T) {
	b := New(10, 10, 691, 1)
	assert.Equal(t, uint32(PixelArrayOffset), b.BMPHeader.OffBits)
	assert.Equal(t, uint32(1078), b.BMPHeader.OffBits)
}

func TestFileSizeInvariant(t *testing.T) {
	b := New(9, 5, 0, 0)
	expected := uint32(PixelArrayOffset) + PixelArraySize(9, 5)
	assert.Equal(t, expected, b.BMPHeader.Size)
}

func TestRowStrideAndPadding(t *testing.T) {
	// width=9 at 8bpp: stride must round up to a multiple of 4.
	assert.Equal(t, 12, RowStride(9))
	assert.Equal(t, 4, RowStride(1))
	assert.Equal(t, 4, RowStride(4))
	assert.Equal(t, 8, RowStride(5))
}

func TestTruncateGrayscale(t *testing.T) {
	b := New(2, 2, 0, 0)
	b.Pixels = []byte{255, 250, 251, 0}
	b.TruncateGrayscale()
	assert.Equal(t, []byte{250, 250, 250, 0}, b.Pixels)
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bmp")

	b := New(5, 3, 42, 7)
	for i := range b.Pixels {
		b.Pixels[i] = byte(i % 251)
	}

	require.NoError(t, b.Write(path))

	got, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, b.Pixels, got.Pixels)
	assert.Equal(t, b.BMPHeader.Seed, got.BMPHeader.Seed)
	assert.Equal(t, b.BMPHeader.ShadowIndex, got.BMPHeader.ShadowIndex)
	assert.Equal(t, b.DIBHeader.Width, got.DIBHeader.Width)
	assert.Equal(t, b.DIBHeader.Height, got.DIBHeader.Height)
	assert.Equal(t, b.Palette, got.Palette)
}

func TestReadRejectsNonBMP(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-a-bmp.bin")
	require.NoError(t, os.WriteFile(path, []byte("not a bitmap at all"), 0o644))

	_, err := Read(path)
	require.Error(t, err)
}

func TestIsValidCarrierDivisibility(t *testing.T) {
	b := New(4, 4, 0, 0) // 16 pixels
	assert.True(t, b.IsValidCarrier(2))
	assert.True(t, b.IsValidCarrier(4))
	assert.False(t, b.IsValidCarrier(5))
}

func TestIsValidShadowRequiresNonzeroIndex(t *testing.T) {
	carrier := New(64, 64, 0, 0) // not a shadow
	assert.False(t, carrier.IsValidShadow(2, 8))

	shadow := New(64, 64, 0, 1)
	assert.True(t, shadow.IsValidShadow(2, 8))
}
