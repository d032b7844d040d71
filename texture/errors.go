package texture

import "errors"

var (
	// ErrUnknownFormat indicates an unsupported texture format tag.
	ErrUnknownFormat = errors.New("unknown texture format")
	// ErrInvalidDimensions indicates non-positive image dimensions.
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	// ErrSizeOverflow indicates the encoded size exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrShortData indicates the block is smaller than the encoded image.
	ErrShortData = errors.New("texture data too short")
	// ErrDecodeImage indicates the block-compressed decode failed.
	ErrDecodeImage = errors.New("decode image failed")
)
