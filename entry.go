package bgst

import (
	"encoding/binary"
	"fmt"
)

// SceneIndex identifies one of the twelve rendering layers, described as
// "scenes" ingame. Entries carry raw file values, so a SceneIndex may fall
// outside the named range.
type SceneIndex int16

const (
	SceneFar05 SceneIndex = iota
	SceneFar04
	SceneFar03
	SceneFar02
	SceneFar01
	SceneMap
	SceneGame
	SceneNear01
	SceneNear02
	SceneNear03
	SceneNear04
	SceneNear05
)

var sceneNames = [LayerCount]string{
	"Far05", "Far04", "Far03", "Far02", "Far01",
	"Map", "Game",
	"Near01", "Near02", "Near03", "Near04", "Near05",
}

// String returns the layer name, or the raw value for layers outside the
// named range.
func (s SceneIndex) String() string {
	if s >= 0 && int(s) < len(sceneNames) {
		return sceneNames[s]
	}

	return fmt.Sprintf("SceneIndex(%d)", int16(s))
}

// GridEntry is one 16-byte grid placement record. Unknown fields are named
// after their record offset.
type GridEntry struct {
	// Enabled indicates whether the cell should be shown.
	Enabled int16
	// SceneIndex is the rendering layer the cell is shown on.
	SceneIndex SceneIndex
	// GridX is the row in which the cell is rendered.
	GridX int16
	// GridY is the column in which the cell is rendered.
	GridY int16
	// MainImageIndex is the CMPR image the cell renders, if any.
	MainImageIndex int16
	// MaskImageIndex is the I4 mask the cell applies to the image, if any.
	MaskImageIndex int16
	// UnknownC is an unidentified value at record offset 0x0C.
	UnknownC int16
	// UnknownE is an unidentified value at record offset 0x0E.
	UnknownE int16
}

// IsEnabled reports whether the entry is enabled.
func (e GridEntry) IsEnabled() bool {
	return e.Enabled != 0
}

// ParseGridEntries materializes the grid-entry records stored between
// infoOffset and imageDataOffset, in file order. An empty region is valid
// and yields no records.
func ParseGridEntries(data []byte, infoOffset, imageDataOffset uint32) ([]GridEntry, error) {
	start := uint64(infoOffset)
	end := uint64(imageDataOffset)

	switch {
	case end < start:
		return nil, fmt.Errorf("%w: info offset 0x%X past image data offset 0x%X", ErrEntryRegion, infoOffset, imageDataOffset)
	case end > uint64(len(data)):
		return nil, fmt.Errorf("%w: region ends at 0x%X, file is %d bytes", ErrEntryRegion, imageDataOffset, len(data))
	case (end-start)%GridEntrySize != 0:
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of records", ErrEntryRegion, end-start)
	}

	entries := make([]GridEntry, 0, int((end-start)/GridEntrySize))

	for off := start; off < end; off += GridEntrySize {
		rec := data[off : off+GridEntrySize]
		entries = append(entries, GridEntry{
			Enabled:        int16(binary.BigEndian.Uint16(rec[0x00:])),
			SceneIndex:     SceneIndex(int16(binary.BigEndian.Uint16(rec[0x02:]))),
			GridX:          int16(binary.BigEndian.Uint16(rec[0x04:])),
			GridY:          int16(binary.BigEndian.Uint16(rec[0x06:])),
			MainImageIndex: int16(binary.BigEndian.Uint16(rec[0x08:])),
			MaskImageIndex: int16(binary.BigEndian.Uint16(rec[0x0A:])),
			UnknownC:       int16(binary.BigEndian.Uint16(rec[0x0C:])),
			UnknownE:       int16(binary.BigEndian.Uint16(rec[0x0E:])),
		})
	}

	return entries, nil
}
