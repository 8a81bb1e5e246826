package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a mutable image that can also be cleared and filled.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// MonoVerticalLSBImage is a 1-bit per pixel monochrome image in the page
// major layout used by SSD1xxx OLED displays: byte (x, page) holds pixels
// (x, page*8) through (x, page*8+7), least significant bit on top.
type MonoVerticalLSBImage struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels, len(Pix) == pages*width.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pages.
	Stride int
}

// NewMonoVerticalLSBImage returns a zeroed w×h image.
func NewMonoVerticalLSBImage(w, h int) *MonoVerticalLSBImage {
	pages := ((h + 7) & ^7) / 8 // round up to whole bytes
	return &MonoVerticalLSBImage{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, pages*w),
		Stride: w,
	}
}

func (p *MonoVerticalLSBImage) ColorModel() color.Model {
	return MonoModel
}

func (p *MonoVerticalLSBImage) Bounds() image.Rectangle {
	return p.Rect
}

// Clear zeroes all pixel bytes.
func (p *MonoVerticalLSBImage) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// SetBit sets or clears the pixel at (x, y). Coordinates outside the image
// are dropped; this is the only bounds check in the drawing pipeline.
func (p *MonoVerticalLSBImage) SetBit(x, y int, on bool) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	var (
		pos = y >> 3 * p.Stride
		bit = byte(1) << uint(y&7)
	)
	if on {
		p.Pix[pos+x] |= bit
	} else {
		p.Pix[pos+x] &^= bit
	}
}

// Bit reports whether the pixel at (x, y) is set. Out-of-range coordinates
// read as unset.
func (p *MonoVerticalLSBImage) Bit(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return false
	}
	return p.Pix[y>>3*p.Stride+x]&(byte(1)<<uint(y&7)) != 0
}

func (p *MonoVerticalLSBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Mono{On: p.Bit(x, y)}
}

func (p *MonoVerticalLSBImage) Set(x, y int, c color.Color) {
	p.SetBit(x, y, monoModel(c).(Mono).On)
}

func (p *MonoVerticalLSBImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Interface checks.
var _ Image = (*MonoVerticalLSBImage)(nil)
