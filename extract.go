package bgst

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// Extension is the conventional file extension of BGST containers.
const Extension = ".bgst3"

// ReadConfig reads container configuration without decoding image data.
func ReadConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(f, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return image.Config{}, fmt.Errorf("%w: %q: %v", ErrInvalidContainer, path, err)
		}

		return image.Config{}, fmt.Errorf("%w: %q: %v", ErrReadFile, path, err)
	}

	if !ValidateHeader(header) {
		return image.Config{}, fmt.Errorf("%w: %q", ErrInvalidContainer, path)
	}

	h := ParseHeader(header)

	width, err := intFromU32(h.ImageWidth)
	if err != nil {
		return image.Config{}, err
	}
	height, err := intFromU32(h.ImageHeight)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		Width:      width,
		Height:     height,
		ColorModel: color.NRGBAModel,
	}, nil
}

// Extract decodes a container file and writes every image as a numbered
// PNG under the directory OutputDir derives from the file name. It returns
// the number of images written.
func Extract(path string) (int, error) {
	return ExtractWithOptions(path, nil)
}

// ExtractWithOptions decodes and writes a container file with the given
// options. Nothing is written unless the whole container decoded. On a
// write failure the count of images already on disk is returned with the
// error.
func ExtractWithOptions(path string, opts *Options) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrReadFile, path, err)
	}

	list, err := RawImagesWithOptions(data, opts)
	if err != nil {
		return 0, err
	}

	dir := OutputDir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrCreateDir, dir, err)
	}

	rect := image.Rect(0, 0, list.ImageWidth, list.ImageHeight)

	for i, raw := range list.Images {
		img := &image.NRGBA{Pix: raw, Stride: list.ImageWidth * 4, Rect: rect}

		name := filepath.Join(dir, strconv.Itoa(i)+".png")
		if err := imgio.Save(name, img, imgio.PNGEncoder()); err != nil {
			return i, fmt.Errorf("%w: %q: %v", ErrWriteImage, name, err)
		}
	}

	return len(list.Images), nil
}

// OutputDir derives the extraction directory from a container path: the
// path with its ".bgst3" suffix removed, falling back to stripping any
// other extension, or appending "_images" when there is nothing to strip.
func OutputDir(path string) string {
	if dir := strings.TrimSuffix(path, Extension); dir != "" && dir != path {
		return dir
	}

	if ext := filepath.Ext(path); ext != "" {
		if dir := strings.TrimSuffix(path, ext); dir != "" {
			return dir
		}
	}

	return path + "_images"
}
