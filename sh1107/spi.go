package sh1107

import (
	"time"

	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio/v4"
)

// SPIOpts wires a panel to the Pi's SPI0 bus. DCPin selects command (low)
// or data (high); ResetPin is optional, 0 means not connected.
type SPIOpts struct {
	Speed    int
	Chip     uint8
	DCPin    int
	ResetPin int
}

type spiTransport struct {
	dc rpio.Pin
}

func (t *spiTransport) command(cmds ...byte) error {
	t.dc.Low()
	rpio.SpiTransmit(cmds...)
	return nil
}

func (t *spiTransport) data(buf []byte) error {
	t.dc.High()
	rpio.SpiTransmit(buf...)
	return nil
}

func (t *spiTransport) Close() error {
	rpio.SpiEnd(rpio.Spi0)
	return rpio.Close()
}

// OpenSPI opens a panel on SPI0 using go-rpio.
func OpenSPI(opts SPIOpts) (*Device, error) {
	if err := rpio.Open(); err != nil {
		return nil, errors.Wrap(err, "sh1107: gpio open")
	}
	if err := rpio.SpiBegin(rpio.Spi0); err != nil {
		rpio.Close()
		return nil, errors.Wrap(err, "sh1107: spi begin")
	}
	if opts.Speed > 0 {
		rpio.SpiSpeed(opts.Speed)
	}
	rpio.SpiChipSelect(opts.Chip)

	dc := rpio.Pin(opts.DCPin)
	dc.Output()

	if opts.ResetPin != 0 {
		// hold reset low long enough for the controller to notice
		rst := rpio.Pin(opts.ResetPin)
		rst.Output()
		rst.Low()
		time.Sleep(10 * time.Millisecond)
		rst.High()
		time.Sleep(10 * time.Millisecond)
	}

	return newDevice(&spiTransport{dc: dc}), nil
}
