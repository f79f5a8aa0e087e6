package firmware

import (
	"time"

	"github.com/robotalks/labtrinket/pkg/l0/comm"
)

// LedMode is the mode of the LED state machine.
type LedMode int

// LED modes.
const (
	LedOff LedMode = iota
	LedSolid
	LedBlink
)

// String implements Stringer.
func (m LedMode) String() string {
	switch m {
	case LedOff:
		return "off"
	case LedSolid:
		return "solid"
	case LedBlink:
		return "blink"
	}
	return "unknown"
}

// LedState is the LED state machine. In LedOff the pixel shows black
// whatever Target is.
type LedState struct {
	Mode LedMode
	// Current alternates between black and Target while blinking.
	Current    comm.RGB
	Target     comm.RGB
	Brightness float64

	// zero until the first idle tick in blink mode.
	nextToggle time.Time
}

func (s *LedState) blink(color comm.RGB) {
	s.Target = color
	s.Mode = LedBlink
	s.Current = comm.Black
	s.nextToggle = time.Time{}
}

func (d *Device) applyLED(cmd comm.Command) {
	switch c := cmd.(type) {
	case comm.LedBrightness:
		d.LED.Brightness = clampUnit(c.Percent / 100)
		d.board.Pixel.SetBrightness(d.LED.Brightness)
		d.LED.Mode = LedSolid
	case comm.LedColor:
		d.LED.Target = c.Color
		d.LED.Mode = LedSolid
	case comm.LedAlert:
		d.LED.blink(AlertColor)
	}
}

func (d *Device) renderLED(now time.Time) {
	color := comm.Black
	switch d.LED.Mode {
	case LedSolid:
		color = d.LED.Target
	case LedBlink:
		switch {
		case d.LED.nextToggle.IsZero():
			d.LED.nextToggle = now.Add(BlinkInterval)
		case !now.Before(d.LED.nextToggle):
			if d.LED.Current == comm.Black {
				d.LED.Current = d.LED.Target
			} else {
				d.LED.Current = comm.Black
			}
			d.LED.nextToggle = now.Add(BlinkInterval)
		}
		color = d.LED.Current
	}
	d.board.Pixel.Fill(color)
	d.board.Pixel.Show()
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
