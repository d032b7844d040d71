package bgst

import "fmt"

// ApplyMask merges a decoded main image with its intensity mask. Where the
// mask pixel is black (r=0, g=0, b=0) the main pixel turns fully
// transparent; everywhere else the main pixel is kept unchanged. Both
// images must be width*height*4 bytes of RGBA.
func ApplyMask(mainImage, maskImage []byte, width, height int) ([]byte, error) {
	if len(mainImage) != len(maskImage) {
		return nil, fmt.Errorf("%w: main %d bytes, mask %d bytes", ErrSizeMismatch, len(mainImage), len(maskImage))
	}
	if want := width * height * 4; len(mainImage) != want {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, have %d", ErrSizeMismatch, width, height, want, len(mainImage))
	}

	out := make([]byte, len(mainImage))
	copy(out, mainImage)

	for i := 0; i < len(out); i += 4 {
		if maskImage[i] == 0 && maskImage[i+1] == 0 && maskImage[i+2] == 0 {
			out[i+3] = 0
		}
	}

	return out, nil
}
