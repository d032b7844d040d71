package texture

import (
	"fmt"

	"github.com/woozymasta/bcn"
)

// decodeCMPR decodes a CMPR block by normalizing it into standard BC1
// order and handing it to the BCn decoder.
func decodeCMPR(data []byte, width, height int, opts *bcn.DecodeOptions) ([]byte, error) {
	img, err := bcn.DecodeImageWithOptions(cmprToBC1(data, width, height), width, height, bcn.FormatDXT1, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}

	return rasterBytes(img, width, height), nil
}

// cmprToBC1 rewrites CMPR tile data as linear BC1 block data.
//
// CMPR stores 8x8 texel tiles, each holding four 4x4 DXT1-style sub-blocks
// in top-left, top-right, bottom-left, bottom-right order. Endpoints are
// big-endian RGB565 and every index byte carries its leftmost texel in the
// two most significant bits; BC1 wants little-endian endpoints, raster
// block order, and the leftmost texel in the least significant bits.
// Sub-blocks that only cover tile padding past the image edge are dropped.
func cmprToBC1(data []byte, width, height int) []byte {
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize
	blocksX := (width + 3) / 4
	blocksY := (height + 3) / 4

	out := make([]byte, blocksX*blocksY*8)

	src := 0
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			for q := 0; q < 4; q++ {
				sub := data[src : src+8]
				src += 8

				bx := tx*2 + q&1
				by := ty*2 + q>>1
				if bx >= blocksX || by >= blocksY {
					continue
				}

				dst := (by*blocksX + bx) * 8
				out[dst+0], out[dst+1] = sub[1], sub[0]
				out[dst+2], out[dst+3] = sub[3], sub[2]
				for i := 4; i < 8; i++ {
					out[dst+i] = mirrorIndexByte(sub[i])
				}
			}
		}
	}

	return out
}

// mirrorIndexByte reverses the four 2-bit texel indices within one byte.
func mirrorIndexByte(b byte) byte {
	return b>>6 | b>>2&0x0C | b<<2&0x30 | b<<6
}
