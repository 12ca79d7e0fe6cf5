package i2c

import (
	"fmt"
	"log"
	"strconv"

	"github.com/pkg/errors"
	pi2c "periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// I2C is one device on an I2C bus. In simulated mode nothing touches the
// hardware: writes are logged, and kept for inspection while recording.
type I2C struct {
	bus       pi2c.BusCloser
	dev       *pi2c.Dev
	address   uint8
	sim       bool
	logging   bool
	recording bool
	writes    [][]byte
}

func logWrite(address uint8, buf []uint8) {
	line := fmt.Sprintf("Write @ 0x%02x: ", address)
	for i := 0; i < len(buf); i++ {
		line += fmt.Sprintf("%02x ", buf[i])
	}
	log.Println(line)
}

// Open a connection to the device at address on bus (/dev/i2c-<bus>).
func Open(address uint8, bus int, simulated bool) (*I2C, error) {
	if simulated {
		return &I2C{address: address, sim: true, logging: true}, nil
	}
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "i2c: host init")
	}
	b, err := i2creg.Open(strconv.Itoa(bus))
	if err != nil {
		return nil, errors.Wrapf(err, "i2c: open bus %d", bus)
	}
	this := &I2C{
		bus:     b,
		dev:     &pi2c.Dev{Addr: uint16(address), Bus: b},
		address: address,
	}
	return this, nil
}

// Simulated reports whether the device is simulated.
func (this *I2C) Simulated() bool {
	return this.sim
}

// SetLogging turns simulated write logging on or off.
func (this *I2C) SetLogging(on bool) {
	this.logging = on
}

// Logging reports whether simulated writes are logged.
func (this *I2C) Logging() bool {
	return this.logging
}

// Record starts or stops keeping simulated writes. Stopping drops what was
// kept.
func (this *I2C) Record(on bool) {
	this.recording = on
	if !on {
		this.writes = nil
	}
}

// Writes returns what a recording simulated device was sent.
func (this *I2C) Writes() [][]byte {
	return this.writes
}

func (this *I2C) Close() error {
	if this.sim {
		if this.logging {
			log.Printf("Close: 0x%02x", this.address)
		}
		return nil
	}
	return this.bus.Close()
}

// WriteCmd writes a single command style byte.
func (this *I2C) WriteCmd(single byte) (int, error) {
	return this.Write([]byte{single})
}

// Write sends buf as one transaction. Not safe for concurrent use.
func (this *I2C) Write(buf []uint8) (int, error) {
	if this.sim {
		if this.recording {
			this.writes = append(this.writes, append([]byte(nil), buf...))
		}
		if this.logging {
			logWrite(this.address, buf)
		}
		return len(buf), nil
	}
	n, err := this.dev.Write(buf)
	if err != nil {
		return n, errors.Wrapf(err, "i2c: write 0x%02x", this.address)
	}
	return n, nil
}
