package ssd1306

import (
	"testing"

	"github.com/TuriSc/go-ssd1306/pixel"
)

// newTestDisplay builds a display around a bare framebuffer, without a
// connection. Only methods that touch the bus need a Conn.
func newTestDisplay(w, h int) *Display {
	return &Display{
		buf:    pixel.NewMonoVerticalLSBImage(w, h),
		width:  w,
		height: h,
		pages:  h / 8,
	}
}

func TestBufferSize(t *testing.T) {
	sizes := []struct {
		w, h int
	}{
		{128, 64},
		{128, 32},
		{96, 16},
		{64, 48},
		{64, 32},
	}
	for _, size := range sizes {
		d := newTestDisplay(size.w, size.h)
		want := size.h / 8 * size.w
		if got := len(d.buf.Pix); got != want {
			t.Errorf("expected %dx%d buffer to be %d bytes, got %d", size.w, size.h, want, got)
		}
	}
}

func TestRotationString(t *testing.T) {
	tests := []struct {
		rotation Rotation
		want     string
	}{
		{NoRotation, "0°"},
		{Rotate90, "90°"},
		{Rotate180, "180°"},
		{Rotate270, "270°"},
	}
	for _, tt := range tests {
		if got := tt.rotation.String(); got != tt.want {
			t.Errorf("expected %d to be %q, got %q", tt.rotation, tt.want, got)
		}
	}
}

func TestSetRotationInvalid(t *testing.T) {
	d := newTestDisplay(128, 64)
	d.SetRotation(Rotate180)
	d.SetRotation(4)
	d.SetRotation(255)
	if got := d.Rotation(); got != Rotate180 {
		t.Errorf("expected invalid rotation to be ignored, got %s", got)
	}
}

func TestTransform(t *testing.T) {
	d := newTestDisplay(128, 64)
	tests := []struct {
		rotation Rotation
		x, y     int
		bx, by   int
	}{
		{NoRotation, 5, 7, 5, 7},
		{Rotate90, 5, 7, 64 - 1 - 7 + 64, 5},
		{Rotate180, 5, 7, 128 - 1 - 5, 64 - 1 - 7},
		{Rotate270, 5, 7, 7, 64 - 1 - 5},
	}
	for _, tt := range tests {
		t.Run(tt.rotation.String(), func(t *testing.T) {
			d.SetRotation(tt.rotation)
			bx, by := d.transform(tt.x, tt.y)
			if bx != tt.bx || by != tt.by {
				t.Errorf("expected (%d,%d) to map to (%d,%d), got (%d,%d)", tt.x, tt.y, tt.bx, tt.by, bx, by)
			}
		})
	}
}

func TestPixelRoundTrip(t *testing.T) {
	for _, rotation := range []Rotation{NoRotation, Rotate90, Rotate180, Rotate270} {
		t.Run(rotation.String(), func(t *testing.T) {
			d := newTestDisplay(128, 64)
			d.SetRotation(rotation)

			coords := []struct{ x, y int }{
				{0, 0}, {1, 0}, {0, 1}, {17, 42}, {63, 31}, {127, 63},
			}
			for _, c := range coords {
				before := make([]byte, len(d.buf.Pix))
				copy(before, d.buf.Pix)

				d.DrawPixel(c.x, c.y)
				d.ClearPixel(c.x, c.y)

				for i := range d.buf.Pix {
					if d.buf.Pix[i] != before[i] {
						t.Fatalf("draw+clear at (%d,%d) did not restore buffer byte %d", c.x, c.y, i)
					}
				}
			}
		})
	}
}

func TestOutOfRangeIsNoop(t *testing.T) {
	d := newTestDisplay(128, 64)
	d.DrawPixel(-1, 0)
	d.DrawPixel(0, -1)
	d.DrawPixel(128, 0)
	d.DrawPixel(0, 64)
	d.DrawPixel(10000, 10000)
	for i, b := range d.buf.Pix {
		if b != 0 {
			t.Fatalf("expected buffer to stay clear, byte %d is %#02x", i, b)
		}
	}
}

func TestUnsupportedSize(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{128, 63}, // height not a multiple of 8
		{-1, 64},
		{128, -8},
	}
	for _, tt := range tests {
		if _, err := New(nil, &Config{Width: tt.w, Height: tt.h}); err == nil {
			t.Errorf("expected error for size %dx%d", tt.w, tt.h)
		}
	}
}
