package sim

import (
	"sync"
	"time"

	fx "github.com/robotalks/labtrinket/pkg/framework"
	"github.com/robotalks/labtrinket/pkg/l0/comm"
)

// SourceFunc produces the analog input code at a time.
type SourceFunc func(time.Time) uint16

// AnalogIn is a simulated analog input channel.
type AnalogIn struct {
	// Source overrides the stored code when set.
	Source SourceFunc
	Clock  fx.TimeSource

	lock  sync.Mutex
	code  uint16
	reads int
}

// Set stores the code returned by Read.
func (a *AnalogIn) Set(code uint16) {
	a.lock.Lock()
	a.code = code
	a.lock.Unlock()
}

// Read implements firmware AnalogIn.
func (a *AnalogIn) Read() uint16 {
	a.lock.Lock()
	defer a.lock.Unlock()
	a.reads++
	if a.Source != nil && a.Clock != nil {
		return a.Source(a.Clock.Time())
	}
	return a.code
}

// Reads returns the number of reads.
func (a *AnalogIn) Reads() int {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.reads
}

// AnalogOut records codes written to the analog output.
type AnalogOut struct {
	lock   sync.Mutex
	code   uint16
	writes int
}

// Write implements firmware AnalogOut.
func (a *AnalogOut) Write(code uint16) {
	a.lock.Lock()
	a.code = code
	a.writes++
	a.lock.Unlock()
}

// Code returns the code last written.
func (a *AnalogOut) Code() uint16 {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.code
}

// Writes returns the number of writes.
func (a *AnalogOut) Writes() int {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.writes
}

// PixelState is what the pixel displays after the last Show.
type PixelState struct {
	Brightness float64
	Color      comm.RGB
	Shows      int
}

// Pixel is a simulated single RGB pixel.
type Pixel struct {
	lock       sync.Mutex
	brightness float64
	fill       comm.RGB
	shown      PixelState
}

// SetBrightness implements firmware Pixel.
func (p *Pixel) SetBrightness(v float64) {
	p.lock.Lock()
	p.brightness = v
	p.lock.Unlock()
}

// Fill implements firmware Pixel.
func (p *Pixel) Fill(c comm.RGB) {
	p.lock.Lock()
	p.fill = c
	p.lock.Unlock()
}

// Show implements firmware Pixel.
func (p *Pixel) Show() {
	p.lock.Lock()
	p.shown = PixelState{Brightness: p.brightness, Color: p.fill, Shows: p.shown.Shows + 1}
	p.lock.Unlock()
}

// State returns the displayed state.
func (p *Pixel) State() PixelState {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.shown
}

// Board groups the simulated peripherals.
type Board struct {
	In    *AnalogIn
	Out   *AnalogOut
	Pixel *Pixel
	Clock fx.TimeSource
}

// NewBoard creates a Board reading time from clock.
func NewBoard(clock fx.TimeSource) *Board {
	return &Board{
		In:    &AnalogIn{Clock: clock},
		Out:   &AnalogOut{},
		Pixel: &Pixel{},
		Clock: clock,
	}
}
