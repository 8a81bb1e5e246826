package ssd1306

// DrawPixel sets the pixel at (x, y) in the framebuffer. Coordinates
// outside the panel after rotation are dropped.
func (d *Display) DrawPixel(x, y int) {
	bx, by := d.transform(x, y)
	d.buf.SetBit(bx, by, true)
}

// ClearPixel clears the pixel at (x, y) in the framebuffer.
func (d *Display) ClearPixel(x, y int) {
	bx, by := d.transform(x, y)
	d.buf.SetBit(bx, by, false)
}

// DrawLine draws a line from (x1, y1) to (x2, y2), endpoints included.
//
// Non-vertical lines are sampled once per column, so steep lines can show
// gaps. Callers rely on the exact pixel set produced, keep it that way.
func (d *Display) DrawLine(x1, y1, x2, y2 int) {
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	if x1 == x2 {
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			d.DrawPixel(x1, y)
		}
		return
	}

	m := float64(y2-y1) / float64(x2-x1)
	for i := x1; i <= x2; i++ {
		d.DrawPixel(i, int(m*float64(i-x1)+float64(y1)))
	}
}

// DrawSquare fills a width×height rectangle with the top-left corner at
// (x, y).
func (d *Display) DrawSquare(x, y, width, height int) {
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			d.DrawPixel(x+i, y+j)
		}
	}
}

// ClearSquare clears a width×height rectangle with the top-left corner at
// (x, y).
func (d *Display) ClearSquare(x, y, width, height int) {
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			d.ClearPixel(x+i, y+j)
		}
	}
}

// DrawEmptySquare draws the outline of a width×height rectangle with the
// top-left corner at (x, y). Corners are drawn twice, once per adjoining
// edge.
func (d *Display) DrawEmptySquare(x, y, width, height int) {
	d.DrawLine(x, y, x+width, y)
	d.DrawLine(x, y+height, x+width, y+height)
	d.DrawLine(x, y, x, y+height)
	d.DrawLine(x+width, y, x+width, y+height)
}

// DrawCircle draws a filled circle with radius r centered at (x, y).
//
// Quadrants are mirrored from the first; mirror points that fall left of or
// above the origin are dropped, not clipped to the edge.
func (d *Display) DrawCircle(x, y, r int) {
	for i := 0; i <= r; i++ {
		for j := 0; j <= r; j++ {
			if i*i+j*j <= r*r {
				d.DrawPixel(x+i, y+j)
				d.DrawPixel(x+i, y-j)
				d.DrawPixel(x-i, y+j)
				d.DrawPixel(x-i, y-j)
			}
		}
	}
}

// ClearCircle clears a filled circle with radius r centered at (x, y).
func (d *Display) ClearCircle(x, y, r int) {
	for i := 0; i <= r; i++ {
		for j := 0; j <= r; j++ {
			if i*i+j*j <= r*r {
				d.ClearPixel(x+i, y+j)
				d.ClearPixel(x+i, y-j)
				d.ClearPixel(x-i, y+j)
				d.ClearPixel(x-i, y-j)
			}
		}
	}
}
