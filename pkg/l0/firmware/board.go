package firmware

import (
	fx "github.com/robotalks/labtrinket/pkg/framework"
	"github.com/robotalks/labtrinket/pkg/l0/comm"
)

// AnalogIn reads the analog input channel.
type AnalogIn interface {
	Read() uint16
}

// AnalogOut drives the analog output channel.
type AnalogOut interface {
	Write(code uint16)
}

// Pixel is a single addressable RGB pixel.
type Pixel interface {
	SetBrightness(float64)
	Fill(comm.RGB)
	Show()
}

// Board groups the peripherals the firmware drives.
type Board struct {
	In    AnalogIn
	Out   AnalogOut
	Pixel Pixel
	// Clock must be monotonic.
	Clock fx.TimeSource
}
