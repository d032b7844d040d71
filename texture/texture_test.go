package texture

import (
	"bytes"
	"errors"
	"testing"
)

func TestLengthTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		w      int
		h      int
		want   int
	}{
		{name: "cmpr-8x8", format: FormatCMPR, w: 8, h: 8, want: 32},
		{name: "cmpr-16x16", format: FormatCMPR, w: 16, h: 16, want: 128},
		{name: "cmpr-9x9", format: FormatCMPR, w: 9, h: 9, want: 128},
		{name: "cmpr-512x512", format: FormatCMPR, w: 512, h: 512, want: 0x20000},
		{name: "i4-512x512", format: FormatI4, w: 512, h: 512, want: 0x20000},
		{name: "i4-1x1", format: FormatI4, w: 1, h: 1, want: 32},
		{name: "unknown", format: Format(9), w: 8, h: 8, want: -1},
		{name: "zero-width", format: FormatCMPR, w: 0, h: 8, want: -1},
		{name: "negative-height", format: FormatI4, w: 8, h: -8, want: -1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Length(tc.format, tc.w, tc.h)
			if got != tc.want {
				t.Fatalf("Length(%v,%d,%d) = %d, want %d", tc.format, tc.w, tc.h, got, tc.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format Format
		want   string
	}{
		{format: FormatCMPR, want: "CMPR"},
		{format: FormatI4, want: "I4"},
		{format: Format(9), want: "Format(9)"},
	}

	for _, tc := range tests {
		if got := tc.format.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		w       int
		h       int
		format  Format
		wantErr error
	}{
		{name: "unknown-format", data: make([]byte, 32), w: 8, h: 8, format: Format(7), wantErr: ErrUnknownFormat},
		{name: "short-cmpr", data: make([]byte, 31), w: 8, h: 8, format: FormatCMPR, wantErr: ErrShortData},
		{name: "short-i4", data: make([]byte, 127), w: 16, h: 16, format: FormatI4, wantErr: ErrShortData},
		{name: "zero-width", data: make([]byte, 32), w: 0, h: 8, format: FormatI4, wantErr: ErrInvalidDimensions},
		{name: "negative-height", data: make([]byte, 32), w: 8, h: -1, format: FormatCMPR, wantErr: ErrInvalidDimensions},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(tc.data, tc.w, tc.h, tc.format)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDecodeI4Solid(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte{0xFF}, Length(FormatI4, 8, 8))

	got, err := Decode(data, 8, 8, FormatI4)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 8*8*4 {
		t.Fatalf("raster length = %d, want %d", len(got), 8*8*4)
	}

	for i, v := range got {
		if v != 0xFF {
			t.Fatalf("byte %d = %#02x, want 0xff", i, v)
		}
	}
}

func TestDecodeI4NibbleOrder(t *testing.T) {
	t.Parallel()

	data := make([]byte, Length(FormatI4, 16, 8))
	data[0] = 0xA0  // texels (0,0) and (1,0)
	data[7] = 0x3C  // texels (6,1) and (7,1)
	data[32] = 0xF5 // second tile, texels (8,0) and (9,0)

	got, err := Decode(data, 16, 8, FormatI4)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 16*8*4 {
		t.Fatalf("raster length = %d, want %d", len(got), 16*8*4)
	}

	px := func(x, y int) []byte { return got[(y*16+x)*4:][:4] }

	tests := []struct {
		x, y int
		want byte
	}{
		{x: 0, y: 0, want: 0xAA},
		{x: 1, y: 0, want: 0x00},
		{x: 6, y: 1, want: 0x33},
		{x: 7, y: 1, want: 0xCC},
		{x: 8, y: 0, want: 0xFF},
		{x: 9, y: 0, want: 0x55},
	}

	for _, tc := range tests {
		want := []byte{tc.want, tc.want, tc.want, tc.want}
		if !bytes.Equal(px(tc.x, tc.y), want) {
			t.Fatalf("pixel (%d,%d) = % x, want % x", tc.x, tc.y, px(tc.x, tc.y), want)
		}
	}
}

func TestDecodeI4PartialTile(t *testing.T) {
	t.Parallel()

	// 12x8: the second tile covers four texel columns, the rest is
	// padding that must be consumed but never written.
	data := make([]byte, Length(FormatI4, 12, 8))
	data[33] = 0x47 // texels (10,0) and (11,0)
	data[34] = 0xFF // padding columns 12 and 13

	got, err := Decode(data, 12, 8, FormatI4)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 12*8*4 {
		t.Fatalf("raster length = %d, want %d", len(got), 12*8*4)
	}

	px := func(x, y int) byte { return got[(y*12+x)*4] }

	if px(10, 0) != 0x44 || px(11, 0) != 0x77 {
		t.Fatalf("edge texels = %#02x %#02x, want 0x44 0x77", px(10, 0), px(11, 0))
	}

	for i, v := range got {
		if off := i / 4 % 12; off != 10 && off != 11 && v != 0 {
			t.Fatalf("byte %d = %#02x, want 0 outside written texels", i, v)
		}
	}
}
