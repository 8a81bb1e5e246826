package ssd1306

import (
	"encoding/binary"
	"testing"
)

var (
	paletteBlackFirst = [2][4]byte{{0x00, 0x00, 0x00, 0x00}, {0xFF, 0xFF, 0xFF, 0x00}}
	paletteWhiteFirst = [2][4]byte{{0xFF, 0xFF, 0xFF, 0x00}, {0x00, 0x00, 0x00, 0x00}}
)

// buildBMP assembles a BMP file with a 40-byte info header and a 2-entry
// color table. Rows are given in storage order and must be padded to 4
// bytes.
func buildBMP(t *testing.T, width, height int32, bitCount uint16, compression uint32, palette [2][4]byte, rows [][]byte) []byte {
	t.Helper()

	buf := make([]byte, 62)
	buf[0], buf[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(buf[10:], 62) // pixel data offset
	binary.LittleEndian.PutUint32(buf[14:], 40) // info header size
	binary.LittleEndian.PutUint32(buf[18:], uint32(width))
	binary.LittleEndian.PutUint32(buf[22:], uint32(height))
	binary.LittleEndian.PutUint16(buf[26:], 1) // planes
	binary.LittleEndian.PutUint16(buf[28:], bitCount)
	binary.LittleEndian.PutUint32(buf[30:], compression)
	copy(buf[54:58], palette[0][:])
	copy(buf[58:62], palette[1][:])

	for _, row := range rows {
		if len(row)%4 != 0 {
			t.Fatalf("row length %d is not padded to 4 bytes", len(row))
		}
		buf = append(buf, row...)
	}
	binary.LittleEndian.PutUint32(buf[2:], uint32(len(buf)))
	return buf
}

func TestDrawBMPSinglePixel(t *testing.T) {
	// 1x1 monochrome BMP, palette entry 0 is black, single data bit 0: the
	// bit matches the resolved foreground index and draws one pixel.
	data := buildBMP(t, 1, 1, 1, 0, paletteBlackFirst, [][]byte{{0x00, 0x00, 0x00, 0x00}})

	d := newTestDisplay(128, 64)
	d.DrawBMPWithOffset(data, 7, 9)

	if !d.buf.Bit(7, 9) {
		t.Error("expected pixel (7,9) to be set")
	}
	if got := d.countSet(); got != 1 {
		t.Errorf("expected exactly one pixel, got %d", got)
	}
}

func TestDrawBMPSinglePixelBackground(t *testing.T) {
	// Same image, but the data bit is 1 (the white palette entry): nothing
	// is drawn.
	data := buildBMP(t, 1, 1, 1, 0, paletteBlackFirst, [][]byte{{0x80, 0x00, 0x00, 0x00}})

	d := newTestDisplay(128, 64)
	d.DrawBMP(data)

	if got := d.countSet(); got != 0 {
		t.Errorf("expected no pixels, got %d", got)
	}
}

func TestDrawBMPForegroundIndex(t *testing.T) {
	// With black in palette entry 1, set data bits are the foreground.
	data := buildBMP(t, 1, 1, 1, 0, paletteWhiteFirst, [][]byte{{0x80, 0x00, 0x00, 0x00}})

	d := newTestDisplay(128, 64)
	d.DrawBMP(data)

	if !d.buf.Bit(0, 0) {
		t.Error("expected pixel (0,0) to be set")
	}
	if got := d.countSet(); got != 1 {
		t.Errorf("expected exactly one pixel, got %d", got)
	}
}

func TestDrawBMPBottomToTop(t *testing.T) {
	// Positive height: rows are stored bottom to top. The first stored row
	// is the bottom row of the image.
	data := buildBMP(t, 2, 2, 1, 0, paletteBlackFirst, [][]byte{
		{0x40, 0x00, 0x00, 0x00}, // bottom row: x=0 white, x=1... bit7=0 draws x=0
		{0x80, 0x00, 0x00, 0x00}, // top row: bit7=1 skips x=0, bit6=0 draws x=1
	})

	d := newTestDisplay(128, 64)
	d.DrawBMP(data)

	if !d.buf.Bit(0, 1) {
		t.Error("expected pixel (0,1) from the bottom row to be set")
	}
	if !d.buf.Bit(1, 0) {
		t.Error("expected pixel (1,0) from the top row to be set")
	}
	if got := d.countSet(); got != 2 {
		t.Errorf("expected 2 pixels, got %d", got)
	}
}

func TestDrawBMPTopToBottom(t *testing.T) {
	// Negative height: rows are stored top to bottom.
	data := buildBMP(t, 2, -2, 1, 0, paletteBlackFirst, [][]byte{
		{0x40, 0x00, 0x00, 0x00}, // top row: draws x=0
		{0x80, 0x00, 0x00, 0x00}, // bottom row: draws x=1
	})

	d := newTestDisplay(128, 64)
	d.DrawBMP(data)

	if !d.buf.Bit(0, 0) {
		t.Error("expected pixel (0,0) from the first stored row to be set")
	}
	if !d.buf.Bit(1, 1) {
		t.Error("expected pixel (1,1) from the second stored row to be set")
	}
	if got := d.countSet(); got != 2 {
		t.Errorf("expected 2 pixels, got %d", got)
	}
}

func TestDrawBMPRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too small", make([]byte, 53)},
		{"empty", nil},
		{"not monochrome", buildBMP(t, 1, 1, 8, 0, paletteBlackFirst, [][]byte{{0x00, 0x00, 0x00, 0x00}})},
		{"24 bpp", buildBMP(t, 1, 1, 24, 0, paletteBlackFirst, [][]byte{{0x00, 0x00, 0x00, 0x00}})},
		{"compressed", buildBMP(t, 1, 1, 1, 2, paletteBlackFirst, [][]byte{{0x00, 0x00, 0x00, 0x00}})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDisplay(128, 64)
			d.DrawBMPWithOffset(tt.data, 0, 0)
			if got := d.countSet(); got != 0 {
				t.Errorf("expected no pixels, got %d", got)
			}
		})
	}
}

func TestDrawBMPRowPadding(t *testing.T) {
	// 9 pixels wide: 2 data bytes per row, padded to 4. All bits zero with
	// black in entry 0 fills the full 9x2 block.
	data := buildBMP(t, 9, 2, 1, 0, paletteBlackFirst, [][]byte{
		{0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00},
	})

	d := newTestDisplay(128, 64)
	d.DrawBMP(data)

	if got := d.countSet(); got != 18 {
		t.Errorf("expected 18 pixels, got %d", got)
	}
	for x := 0; x < 9; x++ {
		for y := 0; y < 2; y++ {
			if !d.buf.Bit(x, y) {
				t.Errorf("expected pixel (%d,%d) to be set", x, y)
			}
		}
	}
}
