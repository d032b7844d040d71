package bgst

import "errors"

var (
	// ErrInvalidContainer indicates the data is not a valid BGST container.
	ErrInvalidContainer = errors.New("not a valid BGST container")
	// ErrEntryRegion indicates a malformed grid-entry region.
	ErrEntryRegion = errors.New("malformed grid-entry region")
	// ErrImageDataTruncated indicates the compressed image data is truncated.
	ErrImageDataTruncated = errors.New("compressed image data truncated")
	// ErrSizeMismatch indicates main and mask image sizes differ.
	ErrSizeMismatch = errors.New("image sizes are not equal")
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrDecodeImage indicates image decode failed.
	ErrDecodeImage = errors.New("decode image failed")
	// ErrOpenFile indicates BGST file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrReadFile indicates BGST file read failed.
	ErrReadFile = errors.New("read file failed")
	// ErrCreateDir indicates output directory creation failed.
	ErrCreateDir = errors.New("create output directory failed")
	// ErrWriteImage indicates writing a decoded image failed.
	ErrWriteImage = errors.New("write image failed")
)
