package firmware

import (
	"math"
	"time"

	"github.com/robotalks/labtrinket/pkg/l0/comm"
)

// AdcState is the ADC sampler.
type AdcState struct {
	// Running enables autonomous sampling.
	Running    bool
	Delay      time.Duration
	Mode       comm.AdcMode
	LastSample time.Time
}

func (d *Device) applyADC(cmd comm.Command) {
	switch c := cmd.(type) {
	case comm.AdcRun:
		d.ADC.Running = true
		d.ADC.LastSample = d.board.Clock.Time()
	case comm.AdcStop:
		d.ADC.Running = false
	case comm.AdcDelay:
		d.ADC.Delay = delayOf(c.Seconds)
	case comm.AdcModeSet:
		d.ADC.Mode = c.Mode
	}
}

const maxDelay = time.Duration(math.MaxInt64)

// delayOf saturates at maxDelay, the float to int64 conversion is undefined
// past it.
func delayOf(seconds float64) time.Duration {
	if seconds >= maxDelay.Seconds() {
		return maxDelay
	}
	return time.Duration(seconds * float64(time.Second))
}

func (d *Device) sample() error {
	return d.respond(comm.ValueOf(d.board.In.Read(), d.ADC.Mode))
}

func (d *Device) sampleIfDue(now time.Time) error {
	if !d.ADC.Running || now.Sub(d.ADC.LastSample) <= d.ADC.Delay {
		return nil
	}
	d.ADC.LastSample = now
	return d.sample()
}
