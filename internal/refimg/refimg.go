// Package refimg is a debugging aid, not part of the secret-sharing
// core: it decodes a bitmap through the standard image.Image pipeline
// for visual inspection, the way andreas-jonsson-hidden and
// wqim-centi's stegano/img package use golang.org/x/image/bmp. The
// core codec in internal/bitmap deliberately avoids image.Image — it
// needs byte-exact control over the reserved header fields and an
// 8-bpp indexed pixel array that package has no hook for — so this
// package exists purely to let a human eyeball a carrier or shadow
// file without reimplementing a renderer.
package refimg

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/bmp"

	"github.com/shadowbmp/shadowbmp/internal/bitmap"
)

// Info summarizes a bitmap for human inspection.
type Info struct {
	Path        string
	Width       int
	Height      int32
	Seed        uint16
	ShadowIndex uint16
	Decodable   bool
	Bounds      image.Rectangle
}

// Inspect reads path with the core codec for its header fields, and
// separately attempts a best-effort decode with golang.org/x/image/bmp
// to report whether the file also round-trips through a generic BMP
// decoder.
func Inspect(path string) (*Info, error) {
	b, err := bitmap.Read(path)
	if err != nil {
		return nil, err
	}

	info := &Info{
		Path:        path,
		Width:       b.Width(),
		Height:      b.Height(),
		Seed:        b.BMPHeader.Seed,
		ShadowIndex: b.BMPHeader.ShadowIndex,
	}

	f, err := os.Open(path)
	if err != nil {
		return info, nil
	}
	defer f.Close()

	img, decodeErr := bmp.Decode(f)
	if decodeErr == nil {
		info.Decodable = true
		info.Bounds = img.Bounds()
	}

	return info, nil
}

// String renders Info as a short, human-readable block.
func (i *Info) String() string {
	return fmt.Sprintf(
		"Path:\t\t%s\nWidth:\t\t%d px\nHeight:\t\t%d px\nSeed:\t\t%d\nShadowIndex:\t%d\nDecodable:\t%v",
		i.Path, i.Width, i.Height, i.Seed, i.ShadowIndex, i.Decodable)
}
