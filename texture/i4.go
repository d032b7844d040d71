package texture

// decodeI4 expands 4-bit intensity tiles into a raw RGBA raster. Every tile
// row is four bytes with the high nibble as the left texel; the intensity
// nibble is replicated into all four output channels.
func decodeI4(data []byte, width, height int) []byte {
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	out := make([]byte, width*height*4)

	src := 0
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			for row := 0; row < tileSize; row++ {
				y := ty*tileSize + row
				for col := 0; col < tileSize; col += 2 {
					b := data[src]
					src++

					if y >= height {
						continue
					}
					if x := tx*tileSize + col; x < width {
						writeIntensity(out, (y*width+x)*4, b>>4)
						if x+1 < width {
							writeIntensity(out, (y*width+x+1)*4, b&0x0F)
						}
					}
				}
			}
		}
	}

	return out
}

// writeIntensity stores one texel, expanding the nibble to eight bits.
func writeIntensity(out []byte, off int, nibble byte) {
	v := nibble * 0x11
	out[off+0] = v
	out[off+1] = v
	out[off+2] = v
	out[off+3] = v
}
