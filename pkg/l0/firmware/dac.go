package firmware

import (
	"github.com/robotalks/labtrinket/pkg/l0/comm"
)

// DacState is the DAC controller. The output is 0 while not Running,
// Level is kept for the next on.
type DacState struct {
	Running bool
	Level   uint16
}

func (d *Device) applyDAC(cmd comm.Command) {
	switch c := cmd.(type) {
	case comm.DacOn:
		d.DAC.Running = true
		d.board.Out.Write(d.DAC.Level)
	case comm.DacOff:
		d.DAC.Running = false
		d.board.Out.Write(0)
	case comm.DacLevel:
		d.DAC.Level = clampLevel(c.Level)
		if d.DAC.Running {
			d.board.Out.Write(d.DAC.Level)
		}
	}
}

func clampLevel(v int64) uint16 {
	switch {
	case v < 0:
		return 0
	case v > comm.MaxLevel:
		return comm.MaxLevel
	}
	return uint16(v)
}
