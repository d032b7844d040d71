package bgst

import "encoding/binary"

// Magic identifies a BGST container.
const Magic = "BGST"

const (
	// HeaderSize is the fixed size of the container header in bytes.
	HeaderSize = 0x40
	// GridEntrySize is the size of one grid-entry record in bytes.
	GridEntrySize = 0x10
	// CompressedImageSize is the fixed size of one compressed image block.
	CompressedImageSize = 0x20000
	// LayerCount is the number of scene layers a container describes.
	LayerCount = 12
)

// Header is the fixed descriptor at the start of a container. Unknown
// fields are named after their file offset.
type Header struct {
	// Unknown4 is an unidentified value at offset 0x04.
	Unknown4 uint32
	// ImageWidth is the width of every image in the grid, in pixels.
	ImageWidth uint32
	// ImageHeight is the height of every image in the grid, in pixels.
	ImageHeight uint32
	// GridWidth is the number of rows the grid has.
	GridWidth uint32
	// GridHeight is the number of columns the grid has.
	GridHeight uint32
	// ImageCount is the number of compressed image blocks in the file.
	ImageCount uint32
	// LayerEnabled indicates which of the twelve scene layers are
	// available to entries.
	LayerEnabled [LayerCount]bool
	// InfoOffset is the file offset of the grid-entry records.
	InfoOffset uint32
	// ImageDataOffset is the file offset of the compressed image blocks.
	ImageDataOffset uint32
}

// ValidateHeader reports whether data begins with a BGST header. It must
// pass before ParseHeader is called on the same data.
func ValidateHeader(data []byte) bool {
	return len(data) >= HeaderSize && string(data[:len(Magic)]) == Magic
}

// ParseHeader parses the fixed header fields from pre-validated data.
func ParseHeader(data []byte) Header {
	h := Header{
		Unknown4:        binary.BigEndian.Uint32(data[0x04:]),
		ImageWidth:      binary.BigEndian.Uint32(data[0x08:]),
		ImageHeight:     binary.BigEndian.Uint32(data[0x0C:]),
		GridWidth:       binary.BigEndian.Uint32(data[0x10:]),
		GridHeight:      binary.BigEndian.Uint32(data[0x14:]),
		ImageCount:      binary.BigEndian.Uint32(data[0x18:]),
		InfoOffset:      binary.BigEndian.Uint32(data[0x28:]),
		ImageDataOffset: binary.BigEndian.Uint32(data[0x2C:]),
	}

	for i := range h.LayerEnabled {
		h.LayerEnabled[i] = data[0x1C+i] != 0
	}

	return h
}
