package fsiter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowbmp/shadowbmp/internal/bitmap"
)

func writeCarrier(t *testing.T, dir, name string, width int, height int32) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b := bitmap.New(width, height, 0, 0)
	require.NoError(t, b.Write(path))
	return path
}

func writeShadowCarrier(t *testing.T, dir, name string, width int, height int32, shadowIndex uint16) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b := bitmap.New(width, height, 691, shadowIndex)
	require.NoError(t, b.Write(path))
	return path
}

func TestCountFiles(t *testing.T) {
	dir := t.TempDir()
	writeCarrier(t, dir, "a.bmp", 4, 4)
	writeCarrier(t, dir, "b.bmp", 4, 4)

	n, err := CountFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestEnumerateCarriersFiltersByDivisibility(t *testing.T) {
	dir := t.TempDir()
	writeCarrier(t, dir, "a.bmp", 4, 4)  // 16 pixels, divisible by 2
	writeCarrier(t, dir, "b.bmp", 4, 4)  // 16 pixels
	writeCarrier(t, dir, "c.bmp", 9, 1) // 9 pixels, not divisible by 2

	paths, err := EnumerateCarriers(dir, 2, 2)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestEnumerateCarriersFailsWhenInsufficient(t *testing.T) {
	dir := t.TempDir()
	writeCarrier(t, dir, "a.bmp", 4, 4)

	_, err := EnumerateCarriers(dir, 2, 3)
	require.Error(t, err)
}

func TestEnumerateShadowsFiltersByIndexAndCapacity(t *testing.T) {
	dir := t.TempDir()
	writeShadowCarrier(t, dir, "s1.bmp", 64, 64, 1)
	writeShadowCarrier(t, dir, "s2.bmp", 64, 64, 2)
	writeCarrier(t, dir, "plain.bmp", 64, 64) // shadow index 0, should be skipped

	paths, err := EnumerateShadows(dir, 2, 8)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestEnumerateShadowsFailsWhenInsufficient(t *testing.T) {
	dir := t.TempDir()
	writeShadowCarrier(t, dir, "s1.bmp", 64, 64, 1)

	_, err := EnumerateShadows(dir, 2, 8)
	require.Error(t, err)
}

func TestFindSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	writeShadowCarrier(t, dir, "s1.bmp", 64, 64, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.bmp"), []byte("not a bitmap"), 0o644))

	paths, err := find(dir, 2, 8, 1, IsValidShadow)
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}
