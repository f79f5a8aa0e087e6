// Package bridge exposes a board to L2 programs: commands received from
// a registrar drive the host driver, autonomous samples are published
// as events.
package bridge

import (
	"fmt"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/labtrinket/pkg/framework"
	"github.com/robotalks/labtrinket/pkg/l0/comm"
	"github.com/robotalks/labtrinket/pkg/l1"
	"github.com/robotalks/labtrinket/pkg/l1/msgs"
	"github.com/robotalks/labtrinket/pkg/l1/trinket"
)

// resetDacLevel is the board's DAC level after reset.
const resetDacLevel = 30000

// Bridge is the L1 controller owning one driver. All driver calls
// happen on the loop goroutine.
type Bridge struct {
	Registrar l1.Registrar
	Driver    *trinket.Driver
	Tries     int

	running  bool
	dacOn    bool
	dacLevel int64
	hasValue bool
	valueAt  int64
}

// New creates a Bridge.
func New(reg l1.Registrar, drv *trinket.Driver) *Bridge {
	return &Bridge{
		Registrar: reg,
		Driver:    drv,
		Tries:     trinket.DefaultTries,
		dacLevel:  resetDacLevel,
	}
}

// AddToLoop implements LoopAdder.
func (b *Bridge) AddToLoop(loop *fx.Loop) {
	loop.AddController(fx.PrLvDevice, fx.ControlFunc(b.drainSamples))
	loop.AddController(fx.PrLvCommand, b)
}

// Control implements Controller.
func (b *Bridge) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		cmdMsg, ok := mctx.CurrentMessage().(*l1.CommandMsg)
		if !ok {
			return
		}
		reply := b.handle(cc, cmdMsg.Command.Msg())
		if reply == nil {
			return
		}
		mctx.MessageTaken()
		if err := cmdMsg.Command.Done(reply); err != nil {
			glog.Warningf("reply %T: %v", cmdMsg.Command.Msg(), err)
		}
	}))
	return nil
}

func (b *Bridge) handle(cc fx.ControlContext, msg fx.Message) fx.Message {
	glog.V(1).Infof("command %T", msg)
	var err error
	switch m := msg.(type) {
	case *msgs.LedColor:
		err = b.Driver.LedSetColor(int(m.Red), int(m.Green), int(m.Blue))
	case *msgs.LedBrightness:
		if m.Percent < 0 || m.Percent > 100 {
			return msgs.NewCommandErr(fmt.Errorf("brightness %v: %w", m.Percent, ErrOutOfRange))
		}
		err = b.Driver.LedSetBrightness(m.Percent)
	case *msgs.LedOff:
		err = b.Driver.LedOff()
	case *msgs.AdcConfig:
		err = b.adcConfig(m)
	case *msgs.AdcRun:
		err = b.adcRun(m.Running)
	case *msgs.AdcRead:
		return b.adcRead(cc)
	case *msgs.DacOutput:
		err = b.dacOutput(m)
	case *msgs.StatusQuery:
		return b.status()
	default:
		return nil
	}
	if err != nil {
		return msgs.NewCommandErr(err)
	}
	return msgs.NewCommandOK()
}

func (b *Bridge) adcConfig(m *msgs.AdcConfig) error {
	// zero keeps the current delay
	if m.Delay != 0 {
		// the board silently drops delays that do not survive the encoding
		if _, err := comm.ParseCommand(comm.AdcDelay{Seconds: m.Delay}.Line()); err != nil {
			return fmt.Errorf("delay %v: %w", m.Delay, ErrOutOfRange)
		}
		if err := b.Driver.AdcDelay(m.Delay); err != nil {
			return err
		}
	}
	return b.Driver.AdcVoltMode(m.Volts)
}

func (b *Bridge) adcRun(running bool) error {
	if running {
		if err := b.Driver.AdcRun(); err != nil {
			return err
		}
	} else if err := b.Driver.AdcStop(); err != nil {
		return err
	}
	b.running = running
	return nil
}

func (b *Bridge) adcRead(cc fx.ControlContext) fx.Message {
	v, ok, err := b.Driver.AdcRead()
	if err != nil {
		return msgs.NewCommandErr(err)
	}
	if !ok {
		return msgs.NewCommandErr(ErrNoValue)
	}
	b.observed(cc)
	return msgs.NewAdcValue(v, cc.Time())
}

func (b *Bridge) dacOutput(m *msgs.DacOutput) error {
	level := m.Level
	if m.SetVolts {
		level = comm.LevelForVolts(m.Volts)
	}
	if err := b.Driver.DacLevel(level); err != nil {
		return err
	}
	// mirrors the clamping done by the board
	switch {
	case level < 0:
		level = 0
	case level > comm.MaxLevel:
		level = comm.MaxLevel
	}
	b.dacLevel = level
	if m.On {
		if err := b.Driver.DacOn(); err != nil {
			return err
		}
	} else if err := b.Driver.DacOff(); err != nil {
		return err
	}
	b.dacOn = m.On
	return nil
}

func (b *Bridge) status() *msgs.Status {
	snap := b.Driver.Snapshot()
	status := &msgs.Status{}
	status.Red = int32(snap.Red)
	status.Green = int32(snap.Green)
	status.Blue = int32(snap.Blue)
	status.Brightness = snap.Brightness
	status.Delay = snap.Delay
	status.Volts = snap.Volts
	status.AdcRunning = b.running
	status.DacOn = b.dacOn
	status.DacLevel = b.dacLevel
	if b.hasValue {
		v := msgs.NewAdcValue(snap.Value, time.Time{})
		v.Timestamp = b.valueAt
		status.Value = &v.AdcValue
	}
	return status
}

func (b *Bridge) observed(cc fx.ControlContext) {
	b.hasValue = true
	b.valueAt = cc.Time().UnixNano()
}

// drainSamples publishes every response pending on the link while the
// ADC runs.
func (b *Bridge) drainSamples(cc fx.ControlContext) error {
	if !b.running {
		return nil
	}
	for {
		ok, err := b.Driver.AdcGetValue(b.Tries)
		if err != nil {
			return fmt.Errorf("drain samples: %w", err)
		}
		if !ok {
			return nil
		}
		b.observed(cc)
		sample := msgs.NewAdcSample(b.Driver.Value(), cc.Time())
		if err := b.Registrar.SendEvent(cc.Context(), sample); err != nil {
			glog.Warningf("publish sample: %v", err)
		}
	}
}
