package ssd1306

// Font is a binary font resource. The renderer borrows the bytes, it never
// copies or mutates them.
//
// The first five bytes describe the font: glyph height in pixels, glyph
// width in pixels, inter-glyph spacing, first character code and last
// character code. Glyph data follows, one block per character in code
// order. Each block holds width columns of ceil(height/8) bytes, column
// major, least significant bit on top.
type Font []byte

const fontHeaderLen = 5

// Height returns the glyph height in pixels.
func (f Font) Height() int { return int(f[0]) }

// Width returns the glyph width in pixels.
func (f Font) Width() int { return int(f[1]) }

// Spacing returns the inter-glyph spacing in pixels.
func (f Font) Spacing() int { return int(f[2]) }

// First returns the first representable character code.
func (f Font) First() byte { return f[3] }

// Last returns the last representable character code.
func (f Font) Last() byte { return f[4] }

// partsPerLine is the number of bytes per glyph column.
func (f Font) partsPerLine() int {
	parts := int(f[0]) >> 3
	if f[0]&7 > 0 {
		parts++
	}
	return parts
}

// DrawCharWithFont draws a single character at (x, y), scaled by scale.
// Each set font bit becomes a scale×scale filled square. Characters outside
// the font's range draw nothing.
func (d *Display) DrawCharWithFont(x, y, scale int, font Font, c byte) {
	if len(font) < fontHeaderLen {
		return
	}
	if c < font.First() || c > font.Last() {
		return
	}

	var (
		parts = font.partsPerLine()
		width = font.Width()
	)
	for w := 0; w < width; w++ {
		pp := int(c-font.First())*width*parts + w*parts + fontHeaderLen
		for lp := 0; lp < parts; lp++ {
			if pp >= len(font) {
				return
			}
			line := font[pp]
			for j := 0; j < 8; j++ {
				if line&1 != 0 {
					d.DrawSquare(x+w*scale, y+(lp<<3+j)*scale, scale, scale)
				}
				line >>= 1
			}
			pp++
		}
	}
}

// DrawStringWithFont draws s at (x, y), scaled by scale. The cursor
// advances by (width+spacing)*scale per character, whether or not the
// character was representable in the font.
func (d *Display) DrawStringWithFont(x, y, scale int, font Font, s string) {
	if len(font) < fontHeaderLen {
		return
	}
	advance := (font.Width() + font.Spacing()) * scale
	for i := 0; i < len(s); i++ {
		d.DrawCharWithFont(x, y, scale, font, s[i])
		x += advance
	}
}

// DrawChar draws a single character using the built-in font.
func (d *Display) DrawChar(x, y, scale int, c byte) {
	d.DrawCharWithFont(x, y, scale, DefaultFont, c)
}

// DrawString draws s using the built-in font.
func (d *Display) DrawString(x, y, scale int, s string) {
	d.DrawStringWithFont(x, y, scale, DefaultFont, s)
}
