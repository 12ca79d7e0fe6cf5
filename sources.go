package main

import (
	"log"
	"time"

	"dscheirer.com/oledtiles/oled_tiles"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// source names
const (
	srcSweep   = "sweep"
	srcSysinfo = "sysinfo"
	srcHTTP    = "http"
)

// sweepValues is a triangle wave: 0 at the start of each period, full
// scale half way through
func sweepValues(elapsed, period time.Duration) panelValues {
	if period <= 0 {
		return panelValues{}
	}
	phase := int64(elapsed % period)
	pos := int(phase * 2 * oled_tiles.DialMax / int64(period))
	if pos > oled_tiles.DialMax {
		pos = 2*oled_tiles.DialMax - pos
	}
	return panelValues{
		Dial:  pos,
		VU:    pos * oled_tiles.VUMax / oled_tiles.DialMax,
		Level: pos,
	}
}

func clampScale(pct float64, max int) int {
	v := int(pct * float64(max) / 100)
	switch {
	case v < 0:
		return 0
	case v > max:
		return max
	}
	return v
}

// sysValues shows cpu load on the dial and percentage, memory on the VU bar
func sysValues(cpuPct, memPct float64) panelValues {
	return panelValues{
		Dial:  clampScale(cpuPct, oled_tiles.DialMax),
		VU:    clampScale(memPct, oled_tiles.VUMax),
		Level: clampScale(cpuPct, oled_tiles.PercentMax),
	}
}

type sweepSource struct{}

func (sweepSource) run(rt runtimeConfig) {
	defer func() {
		log.Println("exiting sweep")
	}()

	period := rt.settings.GetDuration(sSweepPeriod)
	frame := rt.settings.GetDuration(sFrameTime)
	start := rt.clock.Now()
	for {
		if !sendValues(rt, sweepValues(rt.clock.Now().Sub(start), period)) {
			return
		}
		select {
		case <-rt.comms.quit:
			return
		default:
			rt.clock.Sleep(frame)
		}
	}
}

// replaced in tests
var readSysinfo = func() (float64, float64, error) {
	pcts, err := cpu.Percent(0, false)
	if err != nil {
		return 0, 0, err
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, err
	}
	cpuPct := 0.0
	if len(pcts) > 0 {
		cpuPct = pcts[0]
	}
	return cpuPct, vm.UsedPercent, nil
}

type sysinfoSource struct{}

func (sysinfoSource) run(rt runtimeConfig) {
	defer func() {
		log.Println("exiting sysinfo")
	}()

	sample := rt.settings.GetDuration(sSampleTime)
	for {
		cpuPct, memPct, err := readSysinfo()
		if err != nil {
			log.Printf("Error: %s", err.Error())
		} else if !sendValues(rt, sysValues(cpuPct, memPct)) {
			return
		}
		select {
		case <-rt.comms.quit:
			return
		default:
			rt.clock.Sleep(sample)
		}
	}
}
