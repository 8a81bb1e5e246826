// Package pixel implements the monochrome framebuffer used by page
// addressed OLED displays.
//
// The color and image types are compatible with Go's native [color.Color]
// and [image.Image] / [draw.Image] interfaces.
package pixel
