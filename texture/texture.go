/*
Package texture decodes the two block encodings BGST containers store:
CMPR (4x4 block-compressed true color, the main image of a grid cell) and
I4 (4-bit intensity, the cell's transparency mask).

Both encodings arrange texels in 8x8 tiles of 32 bytes, so a width x height
image occupies the same number of container bytes in either format. Decoding
always produces a raw RGBA raster of exactly width*height*4 bytes.
*/
package texture

import (
	"fmt"
	"image"

	"github.com/woozymasta/bcn"
	xdraw "golang.org/x/image/draw"
)

// Format identifies the encoding of one compressed image block.
type Format uint8

const (
	// FormatCMPR is the 4x4 block-compressed true-color encoding.
	FormatCMPR Format = iota
	// FormatI4 is the 4-bit intensity encoding.
	FormatI4
)

func (f Format) String() string {
	switch f {
	case FormatCMPR:
		return "CMPR"
	case FormatI4:
		return "I4"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

const (
	// tileSize is the texel width and height of one tile.
	tileSize = 8
	// tileBytes is the encoded size of one tile in either format.
	tileBytes = 32
)

const maxInt = int(^uint(0) >> 1)

// Length returns the number of bytes a width x height image occupies in the
// container encoding, or -1 when the format is unknown or the size does not
// fit in int.
func Length(f Format, width, height int) int {
	switch f {
	case FormatCMPR, FormatI4:
	default:
		return -1
	}

	n, err := tileDataLength(width, height)
	if err != nil {
		return -1
	}

	return n
}

// tileDataLength is the byte count of the 8x8 tile grid covering
// width x height texels.
func tileDataLength(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > maxInt/4/height {
		return 0, fmt.Errorf("%w: %dx%d", ErrSizeOverflow, width, height)
	}

	tilesX := (uint64(width) + tileSize - 1) / tileSize
	tilesY := (uint64(height) + tileSize - 1) / tileSize

	tiles := tilesX * tilesY
	if tiles/tilesX != tilesY {
		return 0, fmt.Errorf("%w: %dx%d", ErrSizeOverflow, width, height)
	}

	total := tiles * tileBytes
	if total/tileBytes != tiles || total > uint64(maxInt) {
		return 0, fmt.Errorf("%w: %dx%d", ErrSizeOverflow, width, height)
	}

	return int(total), nil
}

// Decode decodes one compressed image block into a raw RGBA raster of
// exactly width*height*4 bytes. Bytes past the encoded image are ignored;
// the container stores every block at a fixed size regardless of the
// declared dimensions.
func Decode(data []byte, width, height int, f Format) ([]byte, error) {
	return DecodeWithOptions(data, width, height, f, nil)
}

// DecodeWithOptions is Decode with explicit BCn decoder options. Nil opts
// uses default decoding; the I4 path has no options and ignores them.
func DecodeWithOptions(data []byte, width, height int, f Format, opts *bcn.DecodeOptions) ([]byte, error) {
	switch f {
	case FormatCMPR, FormatI4:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}

	need, err := tileDataLength(width, height)
	if err != nil {
		return nil, err
	}
	if len(data) < need {
		return nil, fmt.Errorf("%w: %v needs %d bytes for %dx%d, have %d",
			ErrShortData, f, need, width, height, len(data))
	}

	if f == FormatI4 {
		return decodeI4(data, width, height), nil
	}

	return decodeCMPR(data, width, height, opts)
}

// rasterBytes flattens img into a width*height*4 RGBA byte slice.
func rasterBytes(img image.Image, width, height int) []byte {
	rect := image.Rect(0, 0, width, height)
	if n, ok := img.(*image.NRGBA); ok && n.Rect == rect && n.Stride == width*4 && len(n.Pix) == width*height*4 {
		return n.Pix
	}

	dst := image.NewNRGBA(rect)
	xdraw.Draw(dst, rect, img, img.Bounds().Min, xdraw.Src)

	return dst.Pix
}
