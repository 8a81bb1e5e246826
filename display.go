// Package ssd1306 is a driver for SSD1306 monochrome OLED displays.
package ssd1306

import (
	"fmt"
	"os"

	"github.com/TuriSc/go-ssd1306/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("SSD1306_DEBUG") != ""
}

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels, must be a multiple of 8.
	Height int

	// Rotation of the display.
	Rotation Rotation

	// ExternalVCC selects the external charge pump circuit.
	ExternalVCC bool
}

// Display is an SSD1306 OLED display.
//
// The display keeps an in-memory framebuffer that all drawing operations
// mutate; nothing is sent to the hardware until Refresh is called. Drawing
// operations never fail, coordinates outside the panel are silently dropped.
//
// A Display is not safe for concurrent use.
type Display struct {
	c        Conn
	buf      *pixel.MonoVerticalLSBImage
	width    int
	height   int
	pages    int
	rotation Rotation
	halted   bool
}

func (d *Display) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d", d.width, d.height)
}

// Size returns the display dimensions in pixels.
func (d *Display) Size() (width, height int) {
	return d.width, d.height
}

// Image returns the backing framebuffer image. The returned image shares
// its pixels with the display.
func (d *Display) Image() *pixel.MonoVerticalLSBImage {
	return d.buf
}

// Rotation returns the current pixel rotation.
func (d *Display) Rotation() Rotation {
	return d.rotation
}

// SetRotation adjusts the pixel rotation of subsequent drawing operations.
// Values outside the four supported rotations are ignored and the previous
// rotation is kept.
func (d *Display) SetRotation(rotation Rotation) {
	if rotation > Rotate270 {
		return
	}
	d.rotation = rotation
}

// Clear zeroes the framebuffer.
func (d *Display) Clear() {
	d.buf.Clear()
}

// transform maps logical drawing coordinates to framebuffer coordinates
// according to the current rotation. The mapping is exhaustive over the
// closed Rotation set.
func (d *Display) transform(x, y int) (bx, by int) {
	switch d.rotation {
	case Rotate90:
		return d.height - 1 - y + d.width/2, x
	case Rotate180:
		return d.width - 1 - x, d.height - 1 - y
	case Rotate270:
		return y, d.height - 1 - x
	default:
		return x, y
	}
}
