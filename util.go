// utility functions
package main

import (
	"sync"

	"github.com/jonboulle/clockwork"
)

type commChannels struct {
	quit   chan struct{}
	values chan panelValues
	once   *sync.Once
}

// stop closes quit; safe to call from every worker
func (c commChannels) stop() {
	c.once.Do(func() {
		close(c.quit)
	})
}

type runtimeConfig struct {
	comms    commChannels
	clock    clockwork.Clock
	panel    panel
	settings configSettings
}

func initCommChannels() commChannels {
	return commChannels{
		quit:   make(chan struct{}),
		values: make(chan panelValues, 1),
		once:   &sync.Once{},
	}
}

func initRuntime(clock clockwork.Clock, p panel, settings configSettings) runtimeConfig {
	return runtimeConfig{
		comms:    initCommChannels(),
		clock:    clock,
		panel:    p,
		settings: settings,
	}
}

// sendValues hands v to the panel loop unless we are quitting
func sendValues(rt runtimeConfig, v panelValues) bool {
	select {
	case rt.comms.values <- v:
		return true
	case <-rt.comms.quit:
		return false
	}
}
