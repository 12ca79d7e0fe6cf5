package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// setting names
const (
	sXOffset     = "xOffset"
	sYOffset     = "yOffset"
	sRows        = "rows"
	sCols        = "cols"
	sSink        = "sink"
	sI2CBus      = "i2cBus"
	sI2CDev      = "i2cDevice"
	sI2CSim      = "i2cSimulated"
	sSPISpeed    = "spiSpeed"
	sDCPin       = "dcPin"
	sResetPin    = "resetPin"
	sSerialPort  = "serialPort"
	sSerialBaud  = "serialBaud"
	sContrast    = "contrast"
	sFrameTime   = "frameTime"
	sSource      = "source"
	sSweepPeriod = "sweepPeriod"
	sSampleTime  = "sampleTime"
	sHTTPAddr    = "httpAddr"
	sHTTPUser    = "httpUser"
	sHTTPSecret  = "httpSecret"
	sTitle       = "title"
	sLabel       = "label"
	sLogFile     = "logFile"
	sDebug       = "debugDump"
)

// sink names
const (
	sinkI2C    = "sh1107-i2c"
	sinkSPI    = "sh1107-spi"
	sinkTerm   = "term"
	sinkSerial = "serial"
	sinkLog    = "log"
)

// keep settings generic, type-convert on the fly
type configSettings struct {
	settings map[string]interface{}
}

func defaultSettings() configSettings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s[sXOffset] = 15
	s[sYOffset] = 12
	s[sRows] = 16
	s[sCols] = 16
	s[sI2CBus] = 1
	s[sI2CDev] = byte(0x3C)
	s[sSPISpeed] = 8000000
	s[sDCPin] = 24
	s[sResetPin] = 25
	s[sSerialPort] = "/dev/ttyUSB0"
	s[sSerialBaud] = 115200
	s[sContrast] = byte(0x2F)
	s[sFrameTime], _ = time.ParseDuration("50ms")
	s[sSource] = "sweep"
	s[sSweepPeriod], _ = time.ParseDuration("4s")
	s[sSampleTime], _ = time.ParseDuration("1s")
	s[sHTTPAddr] = ":8080"
	s[sHTTPUser] = "oledtiles"
	s[sHTTPSecret] = ""
	s[sTitle] = "VOL"
	s[sLabel] = "SW"
	s[sLogFile] = ""
	s[sDebug] = false

	// off the Pi there is no panel to talk to
	onPi := runtime.GOARCH == "arm" || runtime.GOARCH == "arm64"
	s[sI2CSim] = !onPi
	if onPi {
		s[sSink] = sinkI2C
	} else {
		s[sSink] = sinkTerm
	}

	return configSettings{settings: s}
}

func (s *configSettings) settingsFromJSON(data []byte) error {
	tmp := defaultSettings()
	for k, initVal := range tmp.settings {
		// ignore missing fields
		if _, dataType, _, err := jsonparser.Get(data, k); err != nil || dataType == jsonparser.NotExist {
			continue
		}

		var err error
		switch initVal.(type) {
		case uint8:
			var val int64
			val, err = jsonparser.GetInt(data, k)
			if err != nil {
				// hex strings like "0x3c" are allowed
				var valString string
				valString, err = jsonparser.GetString(data, k)
				if err == nil {
					val, err = strconv.ParseInt(valString, 0, 64)
				}
			}
			if err == nil && (val < 0 || val > 255) {
				err = fmt.Errorf("%s: %d does not fit in a byte", k, val)
			}
			if err == nil {
				s.settings[k] = byte(val)
			}
		case int:
			var val int64
			val, err = jsonparser.GetInt(data, k)
			if err == nil {
				s.settings[k] = int(val)
			}
		case bool:
			var bVal bool
			bVal, err = jsonparser.GetBoolean(data, k)
			if err != nil {
				// try "true" and "false"
				str, _ := jsonparser.GetString(data, k)
				switch strings.ToLower(str) {
				case "true":
					bVal, err = true, nil
				case "false":
					bVal, err = false, nil
				}
			}
			if err == nil {
				s.settings[k] = bVal
			}
		case time.Duration:
			var dur string
			dur, err = jsonparser.GetString(data, k)
			if err == nil {
				var dur2 time.Duration
				dur2, err = time.ParseDuration(dur)
				if err == nil {
					s.settings[k] = dur2
				}
			}
		case string:
			s.settings[k], err = jsonparser.GetString(data, k)
		default:
			err = fmt.Errorf("Bad type: %T", initVal)
		}
		if err != nil {
			return errors.Wrapf(err, "setting %s", k)
		}
	}
	return nil
}

// initSettings loads path over the defaults. An empty path means defaults only.
func initSettings(path string) (configSettings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return s, errors.Wrapf(err, "could not load conf file '%s'", path)
	}

	log.Printf("Reading configuration from '%s'", path)

	if err := s.settingsFromJSON(data); err != nil {
		return s, err
	}
	return s, nil
}

func (s *configSettings) Set(key string, val interface{}) {
	s.settings[key] = val
}

func (s *configSettings) GetString(key string) string {
	switch v := s.settings[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func (s *configSettings) GetBool(key string) bool {
	switch v := s.settings[key].(type) {
	case bool:
		return v
	default:
		return false
	}
}

func (s *configSettings) GetDuration(key string) time.Duration {
	switch v := s.settings[key].(type) {
	case time.Duration:
		return v
	default:
		return -1
	}
}

func (s *configSettings) GetByte(key string) byte {
	switch v := s.settings[key].(type) {
	case byte:
		return v
	case int: // cast to byte
		return byte(v)
	default:
		return 0
	}
}

func (s *configSettings) GetInt(key string) int {
	switch v := s.settings[key].(type) {
	case int:
		return v
	case byte:
		return int(v)
	default:
		return 0
	}
}

func (s *configSettings) Dump() {
	for k, v := range s.settings {
		log.Printf("%s : %T: %v\n", k, v, v)
	}
}
