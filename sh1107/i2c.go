package sh1107

import (
	"dscheirer.com/oledtiles/i2c"
)

// I2C control bytes: the first byte of every write says what follows
const (
	ctrlCommand = 0x00
	ctrlData    = 0x40
)

// DefaultAddress is the usual address of 128x128 SH1107 boards.
const DefaultAddress = 0x3C

type i2cTransport struct {
	dev *i2c.I2C
}

func (t *i2cTransport) command(cmds ...byte) error {
	_, err := t.dev.Write(append([]byte{ctrlCommand}, cmds...))
	return err
}

func (t *i2cTransport) data(buf []byte) error {
	_, err := t.dev.Write(append([]byte{ctrlData}, buf...))
	return err
}

func (t *i2cTransport) Close() error {
	return t.dev.Close()
}

// OpenI2C opens a panel on an I2C bus. A simulated bus logs the traffic.
func OpenI2C(address uint8, bus int, simulated bool) (*Device, *i2c.I2C, error) {
	dev, err := i2c.Open(address, bus, simulated)
	if err != nil {
		return nil, nil, err
	}
	return newDevice(&i2cTransport{dev: dev}), dev, nil
}
