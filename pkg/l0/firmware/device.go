package firmware

import (
	"io"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/labtrinket/pkg/l0/comm"
)

// Boot defaults.
const (
	DefaultBrightness  = 0.95
	DefaultSampleDelay = time.Second
	DefaultDacLevel    = 30000
)

// BlinkInterval is the time between two blink toggles.
const BlinkInterval = 400 * time.Millisecond

// Built-in alert colors.
var (
	// AlertColor blinks after a led command with an unknown option.
	AlertColor = comm.RGB{R: 50}
	// UnknownColor blinks after a line with an unknown keyword.
	UnknownColor = comm.RGB{B: 50}
)

// Device is the firmware context, all peripheral state lives here.
type Device struct {
	LED LedState
	ADC AdcState
	DAC DacState

	board Board
	out   io.Writer
}

// NewDevice creates a Device in boot state, response lines are written
// to out.
func NewDevice(board Board, out io.Writer) *Device {
	d := &Device{
		LED: LedState{Brightness: DefaultBrightness},
		ADC: AdcState{Delay: DefaultSampleDelay, Mode: comm.AdcRaw},
		DAC: DacState{Level: DefaultDacLevel},

		board: board,
		out:   out,
	}
	board.Out.Write(0)
	board.Pixel.SetBrightness(d.LED.Brightness)
	board.Pixel.Fill(comm.Black)
	board.Pixel.Show()
	return d
}

// Dispatch parses a line and applies it. Malformed lines change nothing
// and the parse error is returned.
func (d *Device) Dispatch(line string) error {
	cmd, err := comm.ParseCommand(line)
	if err != nil {
		return err
	}
	return d.Apply(cmd)
}

// Apply applies a parsed command, the only error is a failed response
// write.
func (d *Device) Apply(cmd comm.Command) error {
	glog.V(1).Infof("apply %T %s", cmd, cmd.Line())
	switch c := cmd.(type) {
	case comm.LedBrightness, comm.LedColor, comm.LedAlert:
		d.applyLED(c)
	case comm.AdcRead:
		// the board has always switched the LED to solid here
		d.LED.Mode = LedSolid
		return d.sample()
	case comm.AdcRun, comm.AdcStop, comm.AdcDelay, comm.AdcModeSet:
		d.applyADC(c)
	case comm.DacOn, comm.DacOff, comm.DacLevel:
		d.applyDAC(c)
	case comm.Unknown:
		d.LED.blink(UnknownColor)
	case comm.Ignored:
	}
	return nil
}

// Idle renders the LED and takes an autonomous sample when due.
func (d *Device) Idle(now time.Time) error {
	d.renderLED(now)
	return d.sampleIfDue(now)
}

func (d *Device) respond(v comm.Value) error {
	_, err := io.WriteString(d.out, v.Line()+"\r\n")
	return err
}
