package main

import (
	"io"
	"io/ioutil"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging points the standard logger at logFile (rotated by
// lumberjack) or stderr. quiet drops everything, for tests and snapshots.
func setupLogging(settings configSettings, quiet bool) (io.Closer, error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if quiet {
		log.SetOutput(ioutil.Discard)
		return nopCloser{}, nil
	}

	path := settings.GetString(sLogFile)
	if path == "" {
		log.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	log.SetOutput(lj)
	return lj, nil
}
