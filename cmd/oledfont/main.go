// Command oledfont converts a TrueType font into the binary font resource
// format used by the display driver: a five byte header (glyph height,
// glyph width, spacing, first and last character code) followed by column
// major, LSB-first glyph data.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func main() {
	ttfFlag := flag.String("ttf", "", "TrueType font file")
	outFlag := flag.String("o", "font.bin", "Output file")
	sizeFlag := flag.Float64("size", 8, "Font size in points")
	widthFlag := flag.Int("width", 6, "Glyph cell width in pixels")
	heightFlag := flag.Int("height", 8, "Glyph cell height in pixels")
	spacingFlag := flag.Int("spacing", 1, "Inter-glyph spacing in pixels")
	firstFlag := flag.Int("first", 32, "First character code")
	lastFlag := flag.Int("last", 126, "Last character code")
	flag.Parse()

	if *ttfFlag == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -ttf <font.ttf> [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *widthFlag < 1 || *widthFlag > 255 || *heightFlag < 1 || *heightFlag > 255 {
		fatal(fmt.Errorf("glyph cell %dx%d out of range", *widthFlag, *heightFlag))
	}
	if *firstFlag < 0 || *lastFlag > 255 || *firstFlag > *lastFlag {
		fatal(fmt.Errorf("invalid character range %d..%d", *firstFlag, *lastFlag))
	}

	data, err := os.ReadFile(*ttfFlag)
	if err != nil {
		fatal(err)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		fatal(err)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    *sizeFlag,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	var (
		w        = *widthFlag
		h        = *heightFlag
		parts    = (h + 7) / 8
		ascent   = face.Metrics().Ascent.Ceil()
		resource = []byte{byte(h), byte(w), byte(*spacingFlag), byte(*firstFlag), byte(*lastFlag)}
	)

	for c := *firstFlag; c <= *lastFlag; c++ {
		cell := image.NewGray(image.Rect(0, 0, w, h))
		dr := &font.Drawer{
			Dst:  cell,
			Src:  image.White,
			Face: face,
			Dot:  fixed.P(0, ascent),
		}
		dr.DrawString(string(rune(c)))

		for x := 0; x < w; x++ {
			for lp := 0; lp < parts; lp++ {
				var b byte
				for j := 0; j < 8; j++ {
					if cell.GrayAt(x, lp*8+j).Y > 0x7f {
						b |= 1 << uint(j)
					}
				}
				resource = append(resource, b)
			}
		}
	}

	if err := os.WriteFile(*outFlag, resource, 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %d glyphs (%d bytes) to %s\n", *lastFlag-*firstFlag+1, len(resource), *outFlag)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
