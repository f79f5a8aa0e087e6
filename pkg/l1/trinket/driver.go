// Package trinket is the host driver of the board. It owns the serial
// connection, writes command lines and picks the tagged responses out of
// the echoed stream.
package trinket

import (
	"io"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/labtrinket/pkg/l0/comm"
	"github.com/robotalks/labtrinket/pkg/link"
)

// DefaultTries is the line budget of AdcGetValue.
const DefaultTries = 50

// DefaultReadyTimeout bounds how long AdcRead waits for a response.
const DefaultReadyTimeout = time.Second

// DefaultLineTimeout bounds each line read on a *link.Stream left without
// a ReadTimeout, a line missing its terminator is then dropped.
const DefaultLineTimeout = 250 * time.Millisecond

const readyPollInterval = 5 * time.Millisecond

// Conn is the serial connection, link.Port satisfies it.
type Conn interface {
	io.Writer
	Buffered() (int, error)
	ReadLine() (string, error)
	ResetInputBuffer() error
}

// Snapshot mirrors what was last commanded or observed. It is a cache
// and may differ from the board after a reset.
type Snapshot struct {
	Red, Green, Blue int
	// Brightness in percent.
	Brightness float64
	// Delay between autonomous samples in seconds.
	Delay float64
	Volts bool
	Value comm.Value
}

// DefaultSnapshot makes LedOn light red right away.
var DefaultSnapshot = Snapshot{
	Red:        128,
	Brightness: 100,
	Delay:      1,
}

// Driver drives one board, it must be used from a single goroutine.
type Driver struct {
	ReadyTimeout time.Duration

	conn  Conn
	state Snapshot
}

// New creates a Driver on conn.
func New(conn Conn) *Driver {
	if s, ok := conn.(*link.Stream); ok && s.ReadTimeout == 0 {
		s.ReadTimeout = DefaultLineTimeout
	}
	return &Driver{
		ReadyTimeout: DefaultReadyTimeout,
		conn:         conn,
		state:        DefaultSnapshot,
	}
}

// Snapshot returns the cached state.
func (d *Driver) Snapshot() Snapshot {
	return d.state
}

// Value returns the last observed response value.
func (d *Driver) Value() comm.Value {
	return d.state.Value
}

// Close closes the connection if it can be closed.
func (d *Driver) Close() error {
	if closer, ok := d.conn.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (d *Driver) send(cmds ...comm.Command) error {
	for _, cmd := range cmds {
		glog.V(1).Infof("send %s", cmd.Line())
		if _, err := d.conn.Write(comm.Encode(cmd)); err != nil {
			return err
		}
	}
	return nil
}

// AdcRequestValue asks for one instantaneous read.
func (d *Driver) AdcRequestValue() error {
	return d.send(comm.AdcRead{})
}

// AdcValueReady reports whether any byte is pending, it never blocks.
func (d *Driver) AdcValueReady() (bool, error) {
	n, err := d.conn.Buffered()
	return n > 0, err
}

// AdcGetValue reads pending lines until a response is found, at most
// tries lines are consumed. It returns false when the budget runs out or
// nothing is pending, an error only on link failure.
func (d *Driver) AdcGetValue(tries int) (bool, error) {
	for ; tries > 0; tries-- {
		ready, err := d.AdcValueReady()
		if err != nil || !ready {
			return false, err
		}
		line, err := d.conn.ReadLine()
		if err != nil {
			if os.IsTimeout(err) {
				return false, nil
			}
			return false, err
		}
		c := comm.Classify(line)
		if c.Kind == comm.Response {
			d.state.Value = c.Value
			return true, nil
		}
		glog.V(2).Infof("discard %s %q", c.Kind, line)
	}
	return false, nil
}

// AdcRead requests one read and waits up to ReadyTimeout for it.
func (d *Driver) AdcRead() (comm.Value, bool, error) {
	if err := d.AdcRequestValue(); err != nil {
		return comm.Value{}, false, err
	}
	deadline := time.Now().Add(d.ReadyTimeout)
	for {
		ok, err := d.AdcGetValue(DefaultTries)
		if err != nil || ok {
			return d.state.Value, ok, err
		}
		if time.Now().After(deadline) {
			return d.state.Value, false, nil
		}
		time.Sleep(readyPollInterval)
	}
}

func (d *Driver) modeCmd() comm.Command {
	if d.state.Volts {
		return comm.AdcModeSet{Mode: comm.AdcVolts}
	}
	return comm.AdcModeSet{Mode: comm.AdcRaw}
}

// AdcWriteOptions writes the cached delay and mode.
func (d *Driver) AdcWriteOptions() error {
	return d.send(comm.AdcDelay{Seconds: d.state.Delay}, d.modeCmd())
}

// AdcRun writes the options, starts sampling and drops whatever was
// received before.
func (d *Driver) AdcRun() error {
	if err := d.AdcWriteOptions(); err != nil {
		return err
	}
	if err := d.send(comm.AdcRun{}); err != nil {
		return err
	}
	return d.conn.ResetInputBuffer()
}

// AdcStop stops sampling.
func (d *Driver) AdcStop() error {
	return d.send(comm.AdcStop{})
}

// AdcVoltMode selects volts or raw responses.
func (d *Driver) AdcVoltMode(volts bool) error {
	d.state.Volts = volts
	return d.send(d.modeCmd())
}

// AdcDelay sets the sample delay in seconds.
func (d *Driver) AdcDelay(seconds float64) error {
	d.state.Delay = seconds
	return d.send(comm.AdcDelay{Seconds: seconds})
}

// DacOn enables the output.
func (d *Driver) DacOn() error {
	return d.send(comm.DacOn{})
}

// DacOff disables the output.
func (d *Driver) DacOff() error {
	return d.send(comm.DacOff{})
}

// DacLevel sets the output code, the board clamps it.
func (d *Driver) DacLevel(level int64) error {
	return d.send(comm.DacLevel{Level: level})
}

// DacVolts sets the output code for a voltage clamped to 0..3.3.
func (d *Driver) DacVolts(volts float64) error {
	return d.DacLevel(comm.LevelForVolts(volts))
}

// StageColor updates channels in 0..255 without writing, others keep
// the previous value. Pass -1 to keep a channel.
func (d *Driver) StageColor(red, green, blue int) {
	for _, ch := range []struct {
		v   int
		dst *int
	}{{red, &d.state.Red}, {green, &d.state.Green}, {blue, &d.state.Blue}} {
		if ch.v >= 0 && ch.v < 256 {
			*ch.dst = ch.v
		}
	}
}

// StageBrightness updates the brightness without writing, values
// outside 0..100 are ignored.
func (d *Driver) StageBrightness(percent float64) {
	if percent >= 0 && percent <= 100 {
		d.state.Brightness = percent
	}
}

// LedSetColor stages the color and writes it.
func (d *Driver) LedSetColor(red, green, blue int) error {
	d.StageColor(red, green, blue)
	return d.send(comm.LedColor{Color: comm.RGB{
		R: uint8(d.state.Red),
		G: uint8(d.state.Green),
		B: uint8(d.state.Blue),
	}})
}

// LedSetBrightness stages the brightness and writes it.
func (d *Driver) LedSetBrightness(percent float64) error {
	d.StageBrightness(percent)
	return d.send(comm.LedBrightness{Percent: d.state.Brightness})
}

// LedOn writes the cached brightness and color.
func (d *Driver) LedOn() error {
	if err := d.LedSetBrightness(-1); err != nil {
		return err
	}
	return d.LedSetColor(-1, -1, -1)
}

// LedOff sets brightness 0 on the board, the cached brightness is kept.
func (d *Driver) LedOff() error {
	return d.send(comm.LedBrightness{Percent: 0})
}
