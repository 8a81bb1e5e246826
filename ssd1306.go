package ssd1306

import (
	"fmt"
	"log"

	"github.com/TuriSc/go-ssd1306/pixel"
)

const (
	defaultWidth  = 128
	defaultHeight = 64
)

// New opens a display over the given connection and runs the bring-up
// command sequence.
func New(conn Conn, config *Config) (*Display, error) {
	if config == nil {
		config = new(Config)
	}
	if config.Width == 0 {
		config.Width = defaultWidth
	}
	if config.Height == 0 {
		config.Height = defaultHeight
	}
	if config.Width < 1 || config.Height < 1 || config.Height%8 != 0 {
		return nil, fmt.Errorf("ssd1306: unsupported size %dx%d", config.Width, config.Height)
	}

	d := &Display{
		c:        conn,
		buf:      pixel.NewMonoVerticalLSBImage(config.Width, config.Height),
		width:    config.Width,
		height:   config.Height,
		pages:    config.Height / 8,
		rotation: config.Rotation % 4,
	}

	if err := d.init(config); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Display) init(config *Config) error {
	var (
		chargePump byte = 0x14
		precharge  byte = 0xF1
		comPins    byte = 0x12
	)
	if config.ExternalVCC {
		chargePump = 0x10
		precharge = 0x22
	}
	// Wide panels use the sequential COM pin configuration.
	if config.Width > 2*config.Height {
		comPins = 0x02
	}

	return d.command(
		setDisplayOff,
		// timing and driving scheme
		setDisplayClockDiv, 0x80,
		setMultiplexRatio, byte(config.Height-1),
		setDisplayOffset, 0x00,
		// resolution and layout
		setStartLine,
		setChargePump, chargePump,
		setSegmentRemap|0x01, // column addr 127 mapped to SEG0
		setComScanDec,        // scan from COM[N] to COM0
		setComPins, comPins,
		// display
		setContrast, 0xFF,
		setPrecharge, precharge,
		setVCOMDeselect, 0x30,
		setDisplayAllOnResume, // output follows RAM contents
		setNormalDisplay,      // not inverted
		setDisplayOn,
		// address setting
		setMemoryMode, 0x00, // horizontal
	)
}

// command transmits each byte as a separate command-mode write.
func (d *Display) command(cmds ...byte) error {
	if len(cmds) == 0 {
		return nil
	}
	return d.c.Command(cmds[0], cmds[1:]...)
}

// Close powers the panel off and closes the connection.
func (d *Display) Close() error {
	if !d.halted {
		if err := d.Poweroff(); err != nil {
			_ = d.c.Close()
			return err
		}
		d.halted = true
	}
	return d.c.Close()
}

// Poweron turns the panel on.
func (d *Display) Poweron() error {
	return d.command(setDisplayOn)
}

// Poweroff turns the panel off. The framebuffer is retained.
func (d *Display) Poweroff() error {
	return d.command(setDisplayOff)
}

// Contrast adjusts the contrast level.
func (d *Display) Contrast(level uint8) error {
	return d.command(setContrast, level)
}

// Invert toggles inverted rendering of the panel RAM.
func (d *Display) Invert(invert bool) error {
	if invert {
		return d.command(setInvertDisplay)
	}
	return d.command(setNormalDisplay)
}

// VFlip toggles the vertical COM scan direction.
func (d *Display) VFlip(flip bool) error {
	if flip {
		return d.command(setComScanInc)
	}
	return d.command(setComScanDec)
}

// HFlip toggles the horizontal segment remap.
func (d *Display) HFlip(flip bool) error {
	if flip {
		return d.command(setSegmentRemap)
	}
	return d.command(setSegmentRemap | 0x01)
}

// Rotate flips the panel 180° in hardware.
//
// Deprecated: Use SetRotation instead.
func (d *Display) Rotate(rotate bool) error {
	if err := d.VFlip(rotate); err != nil {
		return err
	}
	return d.HFlip(rotate)
}

// Reset re-issues a minimal wake sequence without reallocating the
// framebuffer.
func (d *Display) Reset() error {
	return d.command(
		0x00, // command mode
		setDisplayOff,
		setDisplayAllOnResume,
		setDisplayClockDiv, 0x80,
		setChargePump, 0x14,
		setNormalDisplay,
		setDisplayOffset, 0x00,
		setStartLine,
		setDisplayOn,
	)
}

// Refresh transfers the framebuffer to the panel. The full column and page
// range is selected first, then the buffer is sent as one contiguous
// data-mode write.
func (d *Display) Refresh() error {
	colStart, colEnd := byte(0), byte(d.width-1)
	if d.width == 64 {
		// 64 column panels are wired to the center segments.
		colStart += 32
		colEnd += 32
	}

	if err := d.command(
		setColumnAddr, colStart, colEnd,
		setPageAddr, 0x00, byte(d.pages-1),
	); err != nil {
		return err
	}

	if debug {
		log.Printf("ssd1306: refresh %d bytes", len(d.buf.Pix))
	}
	return d.c.Data(d.buf.Pix...)
}
