// Command oled-demo exercises an SSD1306 display: it draws a demo scene
// with the driver's own primitives and can optionally show a monochrome
// BMP file or a scene rendered with the gg vector graphics library.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fogleman/gg"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	ssd1306 "github.com/TuriSc/go-ssd1306"
)

func main() {
	widthFlag := flag.Int("width", 128, "Display width")
	heightFlag := flag.Int("height", 64, "Display height")
	i2cDeviceFlag := flag.Int("i2c-dev", ssd1306.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(ssd1306.DefaultI2CConfig.Addr), "I²C device address")
	resetPinFlag := flag.String("reset", "", "Reset GPIO pin (optional)")
	rotateFlag := flag.String("rotate", "", "Display rotation")
	textFlag := flag.String("text", "go-ssd1306", "Text to draw")
	bmpFlag := flag.String("bmp", "", "Monochrome BMP file to draw")
	vectorFlag := flag.Bool("vector", false, "Render an antialiased scene with gg and threshold it")
	flag.Parse()

	var rotation ssd1306.Rotation
	switch *rotateFlag {
	case "", "no", "0":
		rotation = ssd1306.NoRotation
	case "90", "right", "cw":
		rotation = ssd1306.Rotate90
	case "180", "flip":
		rotation = ssd1306.Rotate180
	case "270", "left", "ccw":
		rotation = ssd1306.Rotate270
	default:
		fatal(fmt.Errorf("invalid rotation %q specified", *rotateFlag))
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	conn, err := ssd1306.OpenI2C(&ssd1306.I2CConfig{
		Device: *i2cDeviceFlag,
		Addr:   uint8(*i2cAddrFlag),
		Reset:  gpioreg.ByName(*resetPinFlag),
	})
	if err != nil {
		fatal(err)
	}

	display, err := ssd1306.New(conn, &ssd1306.Config{
		Width:    *widthFlag,
		Height:   *heightFlag,
		Rotation: rotation,
	})
	if err != nil {
		_ = conn.Close()
		fatal(err)
	}
	defer display.Close()
	fmt.Printf("using display: %s, rotation: %s\n", display, rotation)

	display.Clear()

	switch {
	case *bmpFlag != "":
		data, err := os.ReadFile(*bmpFlag)
		if err != nil {
			fatal(err)
		}
		display.DrawBMP(data)

	case *vectorFlag:
		drawVectorScene(display, *widthFlag, *heightFlag)

	default:
		w, h := display.Size()
		display.DrawEmptySquare(0, 0, w-1, h-1)
		display.DrawString(4, 4, 1, *textFlag)
		display.DrawCircle(w/2, h/2+8, 12)
		display.DrawLine(4, h-5, w-5, 16)
	}

	if err := display.Refresh(); err != nil {
		fatal(err)
	}

	// Blink the panel a few times so a misconfigured display is easy to spot.
	for i := 0; i < 4; i++ {
		time.Sleep(500 * time.Millisecond)
		if err := display.Invert(i%2 == 0); err != nil {
			fatal(err)
		}
	}
}

// drawVectorScene renders an antialiased scene off-screen and thresholds
// it onto the monochrome framebuffer.
func drawVectorScene(display *ssd1306.Display, w, h int) {
	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(float64(w)/2, float64(h)/2, float64(h)/3)
	dc.SetLineWidth(2)
	dc.Stroke()
	dc.DrawLine(0, 0, float64(w), float64(h))
	dc.Stroke()

	img := dc.Image()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if (19595*r+38470*g+7471*b)>>16 > 0x7fff {
				display.DrawPixel(x, y)
			}
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
