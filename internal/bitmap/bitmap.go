// Package bitmap implements the 8-bpp indexed BMP container model:
// byte-exact header layout, the canonical grayscale palette, and the
// row-padding arithmetic shared by the secret-sharing engine and the
// steganographic channel.
package bitmap

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/shadowbmp/shadowbmp/internal/shadowerr"
)

// Bitmap represents an 8-bpp indexed BMP: headers, a 256-entry
// grayscale palette, and a row-padded pixel array. It owns its pixel
// buffer exclusively.
type Bitmap struct {
	Filename  string
	BMPHeader *BMPHeader
	DIBHeader *DIBHeader
	Palette   [PaletteSize]byte
	Pixels    []byte
	Stride    int
}

// Loader abstracts reading a bitmap from storage. The engine does no
// I/O, and the pipeline does not go through Loader or Storer: it calls
// Read and Write directly.
type Loader interface {
	Load(name string) (*Bitmap, error)
}

// Storer abstracts writing a bitmap to storage.
type Storer interface {
	Store(b *Bitmap, name string) error
}

// FileStore implements Loader and Storer against the local filesystem.
type FileStore struct{}

func (FileStore) Load(name string) (*Bitmap, error) { return Read(name) }

func (FileStore) Store(b *Bitmap, name string) error { return b.Write(name) }

// RowStride returns the row stride, in bytes, for a given width at
// 8 bits per pixel: rows are padded to a multiple of 4 bytes.
func RowStride(width int) int {
	return ((BitsPerPixel*width + 31) / 32) * 4
}

// PixelArraySize returns the pixel-array size, in bytes, for the given
// dimensions: row stride times the absolute height.
func PixelArraySize(width int, height int32) uint32 {
	h := height
	if h < 0 {
		h = -h
	}
	return uint32(RowStride(width) * int(h))
}

// grayscalePalette returns the canonical 256-entry grayscale palette:
// entry i = (i, i, i, 0), stored as consecutive BGRA bytes.
func grayscalePalette() [PaletteSize]byte {
	var p [PaletteSize]byte
	for i := 0; i < 256; i++ {
		j := i * 4
		p[j] = byte(i)
		p[j+1] = byte(i)
		p[j+2] = byte(i)
		p[j+3] = 0
	}
	return p
}

// New constructs a fresh bitmap with the canonical grayscale palette
// and a zeroed pixel array. Pass shadowIndex 0 for a plain bitmap, or
// a 1-based ordinal to mark it as a shadow.
func New(width int, height int32, seed, shadowIndex uint16) *Bitmap {
	size := PixelArraySize(width, height)

	b := &Bitmap{
		Stride:  RowStride(width),
		Palette: grayscalePalette(),
		Pixels:  make([]byte, size),
		BMPHeader: &BMPHeader{
			Type:        [2]byte{'B', 'M'},
			Size:        PixelArrayOffset + size,
			Seed:        seed,
			ShadowIndex: shadowIndex,
			OffBits:     PixelArrayOffset,
		},
		DIBHeader: &DIBHeader{
			Size:      DIBHeaderSize,
			Width:     uint32(width),
			Height:    height,
			Planes:    1,
			BitCount:  BitsPerPixel,
			SizeImage: size,
		},
	}
	return b
}

// NewShadow constructs a shadow bitmap of the given width and height,
// tagged with seed and the 1-based shadowIndex. Unlike New, a
// shadow's pixel array is exactly width*height bytes with no row
// padding: a shadow is never written to disk as its own BMP file (it
// is only ever embedded into, or extracted from, a carrier), so its
// dimensions don't need to satisfy the 4-byte row-stride convention
// real on-disk bitmaps do.
func NewShadow(width, height int, seed, shadowIndex uint16) *Bitmap {
	size := uint32(width * height)

	return &Bitmap{
		Stride:  width,
		Palette: grayscalePalette(),
		Pixels:  make([]byte, size),
		BMPHeader: &BMPHeader{
			Type:        [2]byte{'B', 'M'},
			Size:        PixelArrayOffset + size,
			Seed:        seed,
			ShadowIndex: shadowIndex,
			OffBits:     PixelArrayOffset,
		},
		DIBHeader: &DIBHeader{
			Size:      DIBHeaderSize,
			Width:     uint32(width),
			Height:    int32(height),
			Planes:    1,
			BitCount:  BitsPerPixel,
			SizeImage: size,
		},
	}
}

// Read loads a bitmap from the named file.
//
// Header fields are decoded with a fixed little-endian byte order, so
// the on-disk layout is identical regardless of the host's native
// endianness; no separate byte-swap pass is needed the way a struct
// read via native layout would require.
func Read(filename string) (*Bitmap, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, shadowerr.Wrap(shadowerr.ErrIO, fmt.Sprintf("open %s", filename))
	}
	defer f.Close()

	r := bufio.NewReader(f)

	b := &Bitmap{Filename: filename, BMPHeader: &BMPHeader{}, DIBHeader: &DIBHeader{}}

	if err := binary.Read(r, binary.LittleEndian, b.BMPHeader); err != nil {
		return nil, shadowerr.Wrap(shadowerr.ErrIO, "read bmp header")
	}
	if b.BMPHeader.Type[0] != 'B' || b.BMPHeader.Type[1] != 'M' {
		return nil, shadowerr.Wrap(shadowerr.ErrInvalidBmp, fmt.Sprintf("%s is not a bitmap", filename))
	}

	if err := binary.Read(r, binary.LittleEndian, b.DIBHeader); err != nil {
		return nil, shadowerr.Wrap(shadowerr.ErrIO, "read dib header")
	}
	if b.DIBHeader.Size != DIBHeaderSize || b.DIBHeader.BitCount != BitsPerPixel || b.DIBHeader.Compression != 0 {
		return nil, shadowerr.Wrap(shadowerr.ErrUnsupportedBmp, fmt.Sprintf("%s is not an 8bpp uncompressed BITMAPINFOHEADER bitmap", filename))
	}

	if _, err := io.ReadFull(r, b.Palette[:]); err != nil {
		return nil, shadowerr.Wrap(shadowerr.ErrIO, "read palette")
	}

	b.Stride = RowStride(int(b.DIBHeader.Width))

	size := b.imageSize()
	b.Pixels = make([]byte, size)
	if _, err := io.ReadFull(r, b.Pixels); err != nil {
		return nil, shadowerr.Wrap(shadowerr.ErrIO, "read pixel array")
	}

	return b, nil
}

// imageSize mirrors the original source's bmpimagesize: prefer
// file-size minus pixel-array offset (so zero-initialized headers
// still resolve via DIBHeader.SizeImage), falling back to the DIB
// header's own SizeImage when the file size field was left at zero
// by the writer.
func (b *Bitmap) imageSize() uint32 {
	if b.BMPHeader.Size > 0 {
		return b.BMPHeader.Size - b.BMPHeader.OffBits
	}
	return b.DIBHeader.SizeImage
}

// Write saves the bitmap to the named file, emitting the same
// little-endian header layout Read expects.
func (b *Bitmap) Write(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return shadowerr.Wrap(shadowerr.ErrIO, fmt.Sprintf("create %s", filename))
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	if err := binary.Write(w, binary.LittleEndian, b.BMPHeader); err != nil {
		return shadowerr.Wrap(shadowerr.ErrIO, "write bmp header")
	}
	if err := binary.Write(w, binary.LittleEndian, b.DIBHeader); err != nil {
		return shadowerr.Wrap(shadowerr.ErrIO, "write dib header")
	}
	if _, err := w.Write(b.Palette[:]); err != nil {
		return shadowerr.Wrap(shadowerr.ErrIO, "write palette")
	}
	if _, err := w.Write(b.Pixels); err != nil {
		return shadowerr.Wrap(shadowerr.ErrIO, "write pixel array")
	}
	if err := w.Flush(); err != nil {
		return shadowerr.Wrap(shadowerr.ErrIO, fmt.Sprintf("flush %s", filename))
	}

	return nil
}

// TruncateGrayscale clamps every pixel to [0, 250], the lossy step
// applied once to a secret so its pixel values always fit a GF(251)
// residue.
func (b *Bitmap) TruncateGrayscale() {
	for i, p := range b.Pixels {
		if p > 250 {
			b.Pixels[i] = 250
		}
	}
}

// Width returns the bitmap's width in pixels.
func (b *Bitmap) Width() int { return int(b.DIBHeader.Width) }

// Height returns the bitmap's signed height in pixels.
func (b *Bitmap) Height() int32 { return b.DIBHeader.Height }

// IsBMP reports whether the magic bytes identify a BMP file.
func (b *Bitmap) IsBMP() bool {
	return b.BMPHeader.Type[0] == 'B' && b.BMPHeader.Type[1] == 'M'
}

// IsValidCarrier reports whether the bitmap can be used as a carrier
// for a (k, n) scheme: it must be a BMP whose pixel count divides
// evenly by k, so every section fits.
func (b *Bitmap) IsValidCarrier(k int) bool {
	pixels := int(b.DIBHeader.Width) * int(absHeight(b.DIBHeader.Height))
	return b.IsBMP() && pixels%k == 0
}

// IsValidShadow reports whether the bitmap is usable as a shadow for
// a given secretSize (in bytes) at threshold k: it must carry a
// nonzero shadow index, be a BMP, and have at least secretSize*8/k
// pixels (integer division).
//
// The factor of 8 reflects the steganographic expansion (one shadow
// byte per 8 carrier pixels), not the shadow's own size.
func (b *Bitmap) IsValidShadow(k int, secretSize uint32) bool {
	if b.BMPHeader.ShadowIndex == 0 || !b.IsBMP() {
		return false
	}
	shadowSize := secretSize * 8 / uint32(k)
	imgSize := b.DIBHeader.Width * uint32(absHeight(b.DIBHeader.Height))
	return imgSize >= shadowSize
}

func absHeight(h int32) int32 {
	if h < 0 {
		return -h
	}
	return h
}
