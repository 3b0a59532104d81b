// BMP-specific structs and types for the 8-bpp indexed bitmaps this
// module reads, writes, and hides shadows inside.
package bitmap

const (
	// BMPHeaderSize is the size, in bytes, of the 14-byte BMP file header.
	BMPHeaderSize = 14

	// DIBHeaderSize is the size, in bytes, of the 40-byte BITMAPINFOHEADER.
	DIBHeaderSize = 40

	// PaletteSize is the size, in bytes, of the 256-entry BGRA palette.
	PaletteSize = 1024

	// PixelArrayOffset is the fixed offset of the pixel array for any
	// bitmap produced by this module: header + DIB header + palette.
	PixelArrayOffset = BMPHeaderSize + DIBHeaderSize + PaletteSize

	// BitsPerPixel is the only depth this module's core understands.
	BitsPerPixel = 8

	// DefaultSeed is the permutation seed used when none is supplied.
	DefaultSeed = 691
)

// BMPHeader is the 14-byte BITMAPFILEHEADER, with the two reserved
// fields repurposed to carry the permutation seed and the 1-based
// shadow ordinal (0 for a non-shadow bitmap).
//
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader
type BMPHeader struct {
	Type        [2]byte // must be {'B', 'M'}
	Size        uint32  // size, in bytes, of the whole bitmap file
	Seed        uint16  // Reserved1: permutation seed
	ShadowIndex uint16  // Reserved2: 1-based shadow ordinal, 0 if not a shadow
	OffBits     uint32  // byte offset to the pixel array; always PixelArrayOffset
}

// DIBHeader is the 40-byte BITMAPINFOHEADER.
type DIBHeader struct {
	Size            uint32 // number of bytes in this header; always 40
	Width           uint32 // bitmap width, in pixels
	Height          int32  // bitmap height, in pixels; negative means top-down
	Planes          uint16 // number of color planes; always 1
	BitCount        uint16 // bits per pixel; always 8 for this module
	Compression     uint32 // compression method; always 0 (none)
	SizeImage       uint32 // size of the pixel array, in bytes, after row padding
	XPixelsPerM     int32  // horizontal resolution, pixels per meter
	YPixelsPerM     int32  // vertical resolution, pixels per meter
	ColorsUsed      uint32 // number of palette entries actually used
	ColorsImportant uint32 // number of palette entries required for display
}
