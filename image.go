package bgst

import (
	"fmt"

	"github.com/woozymasta/bcn"

	"github.com/Swiftshine/bgst/texture"
)

// Options configures image extraction (mask compositing and BCn decode
// workers).
type Options struct {
	// Composite merges each entry's main image with its mask instead of
	// emitting them separately.
	Composite bool
	// DecodeOptions are passed to the BCn decoder (e.g. Workers).
	DecodeOptions *bcn.DecodeOptions
}

// ImageList holds the decoded images of a container.
type ImageList struct {
	// ImageWidth is the width of every image, in pixels.
	ImageWidth int
	// ImageHeight is the height of every image, in pixels.
	ImageHeight int
	// Entries are the grid records in file order.
	Entries []GridEntry
	// Images are raw RGBA rasters in emission order, width*height*4 bytes
	// each.
	Images [][]byte
}

// RawImages decodes every image referenced by the container's grid
// entries into raw RGBA.
func RawImages(data []byte) (*ImageList, error) {
	return RawImagesWithOptions(data, nil)
}

// RawImagesWithOptions decodes every referenced image with the given
// options. Nil opts emits mains and masks separately with default
// decoding.
func RawImagesWithOptions(data []byte, opts *Options) (*ImageList, error) {
	if !ValidateHeader(data) {
		return nil, ErrInvalidContainer
	}

	header := ParseHeader(data)

	width, err := intFromU32(header.ImageWidth)
	if err != nil {
		return nil, err
	}
	height, err := intFromU32(header.ImageHeight)
	if err != nil {
		return nil, err
	}

	entries, err := ParseGridEntries(data, header.InfoOffset, header.ImageDataOffset)
	if err != nil {
		return nil, err
	}

	blocksEnd := uint64(header.ImageDataOffset) + uint64(header.ImageCount)*CompressedImageSize
	if blocksEnd > uint64(len(data)) {
		return nil, fmt.Errorf("%w: %d blocks need %d bytes, file is %d", ErrImageDataTruncated, header.ImageCount, blocksEnd, len(data))
	}

	composite := false
	decOpts := (*bcn.DecodeOptions)(nil)
	if opts != nil {
		composite = opts.Composite
		decOpts = opts.DecodeOptions
	}

	imageData := data[header.ImageDataOffset:]
	imageCount := int(header.ImageCount)
	images := make([][]byte, 0, len(entries))

	for i, entry := range entries {
		mainImage, err := decodeSlot(imageData, entry.MainImageIndex, imageCount, width, height, texture.FormatCMPR, decOpts)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrDecodeImage, i, err)
		}

		maskImage, err := decodeSlot(imageData, entry.MaskImageIndex, imageCount, width, height, texture.FormatI4, decOpts)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrDecodeImage, i, err)
		}

		if composite && mainImage != nil && maskImage != nil {
			merged, err := ApplyMask(mainImage, maskImage, width, height)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}

			images = append(images, merged)
			continue
		}

		if mainImage != nil {
			images = append(images, mainImage)
		}
		if maskImage != nil {
			images = append(images, maskImage)
		}
	}

	return &ImageList{
		ImageWidth:  width,
		ImageHeight: height,
		Entries:     entries,
		Images:      images,
	}, nil
}

// decodeSlot decodes the referenced block, or returns nil images for
// indexes outside [0, imageCount).
func decodeSlot(imageData []byte, index int16, imageCount, width, height int, f texture.Format, opts *bcn.DecodeOptions) ([]byte, error) {
	if index < 0 || int(index) >= imageCount {
		return nil, nil
	}

	start := int(index) * CompressedImageSize

	return texture.DecodeWithOptions(imageData[start:start+CompressedImageSize], width, height, f, opts)
}
