package ssd1306

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"

	"github.com/TuriSc/go-ssd1306/conn"
)

// Conn is the connection interface for communicating with hardware.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Reset sets the reset pin to the provided level.
	Reset(gpio.Level) error

	// Command sends command bytes, each as its own command-mode write.
	Command(byte, ...byte) error

	// Data sends data bytes as one contiguous data-mode write.
	Data(...byte) error
}

// Control markers prefixed to every bus transfer.
const (
	commandMode = 0x00
	dataMode    = 0x40
)

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Addr is the I²C address.
	Addr uint8

	// Reset pin.
	Reset gpio.PinOut
}

// DefaultI2CConfig are the default configuration values.
var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Addr:   0x3c,
}

type i2cConn struct {
	*conn.I2C
	reset gpio.PinOut
}

// OpenI2C opens the configured I²C device.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	c, err := conn.OpenI2C(config.Device, config.Addr)
	if err != nil {
		return nil, err
	}

	return &i2cConn{
		I2C:   c,
		reset: config.Reset,
	}, nil
}

// NewI2CConn wraps an already opened I²C bus. It is mainly useful for
// testing and for programs that manage the bus themselves.
func NewI2CConn(bus i2c.Bus, addr uint8) Conn {
	return &i2cConn{
		I2C: conn.NewI2C(bus, addr),
	}
}

func (c *i2cConn) Command(cmnd byte, args ...byte) (err error) {
	// The controller expects every command byte as a two-byte write: the
	// command-mode marker followed by the value.
	if _, err = c.I2C.Write([]byte{commandMode, cmnd}); err != nil {
		return
	}
	for _, arg := range args {
		if _, err = c.I2C.Write([]byte{commandMode, arg}); err != nil {
			return
		}
	}
	return
}

func (c *i2cConn) Data(data ...byte) (err error) {
	_, err = c.I2C.Write(append([]byte{dataMode}, data...))
	return
}

func (c *i2cConn) Reset(level gpio.Level) error {
	if c.reset == nil {
		return nil
	}
	return c.reset.Out(level)
}
