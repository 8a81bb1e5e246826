package ssd1306

import (
	"encoding/binary"
)

// Fixed offsets into the bitmap file and info headers.
const (
	bmpHeaderLen      = 54
	bmpOffBits        = 10
	bmpInfoSize       = 14
	bmpWidth          = 18
	bmpHeight         = 22
	bmpBitCount       = 28
	bmpCompression    = 30
	bmpColorTableBase = 14
)

// DrawBMP draws an uncompressed monochrome BMP image at the origin. See
// DrawBMPWithOffset.
func (d *Display) DrawBMP(data []byte) {
	d.DrawBMPWithOffset(data, 0, 0)
}

// DrawBMPWithOffset draws an uncompressed monochrome BMP image with its
// top-left corner at (xOffset, yOffset).
//
// Images that are too small, not 1 bit per pixel, or compressed are
// ignored, no pixels are drawn. The palette entry that is pure black is
// taken as the foreground; if neither entry is black, entry 0 is used.
func (d *Display) DrawBMPWithOffset(data []byte, xOffset, yOffset int) {
	if len(data) < bmpHeaderLen {
		return
	}

	var (
		offBits     = int(binary.LittleEndian.Uint32(data[bmpOffBits:]))
		infoSize    = int(binary.LittleEndian.Uint32(data[bmpInfoSize:]))
		width       = int(binary.LittleEndian.Uint32(data[bmpWidth:]))
		height      = int(int32(binary.LittleEndian.Uint32(data[bmpHeight:])))
		bitCount    = binary.LittleEndian.Uint16(data[bmpBitCount:])
		compression = binary.LittleEndian.Uint32(data[bmpCompression:])
	)

	if bitCount != 1 {
		return
	}
	if compression != 0 {
		return
	}

	var foreground byte
	tableStart := bmpColorTableBase + infoSize
	for i := 0; i < 2; i++ {
		o := tableStart + i*4
		if o < 0 || o+2 >= len(data) {
			break
		}
		if data[o]|data[o+1]|data[o+2] == 0 {
			foreground = byte(i)
			break
		}
	}

	// Rows are padded to 4-byte boundaries.
	stride := width / 8
	if width&7 != 0 {
		stride++
	}
	if stride&3 != 0 {
		stride = (stride &^ 3) + 4
	}

	row := offBits
	if height > 0 {
		// bottom-to-top storage
		for y := height - 1; y >= 0; y-- {
			d.drawBMPRow(data, row, width, foreground, xOffset, yOffset+y)
			row += stride
		}
	} else {
		for y := 0; y < -height; y++ {
			d.drawBMPRow(data, row, width, foreground, xOffset, yOffset+y)
			row += stride
		}
	}
}

func (d *Display) drawBMPRow(data []byte, row, width int, foreground byte, xOffset, y int) {
	for x := 0; x < width; x++ {
		i := row + x>>3
		if i < 0 || i >= len(data) {
			return
		}
		if (data[i]>>(7-x&7))&1 == foreground {
			d.DrawPixel(xOffset+x, y)
		}
	}
}
