package msgs

import (
	"time"

	"github.com/robotalks/labtrinket/pkg/l0/comm"
	pb "github.com/robotalks/labtrinket/pkg/proto/trinket/v1"
)

func valueMsg(v comm.Value, at time.Time) pb.AdcValue {
	m := pb.AdcValue{IsVolts: v.Kind == comm.VoltsValue}
	if m.IsVolts {
		m.Volts = v.Volts
	} else {
		m.Int = v.Int
	}
	if !at.IsZero() {
		m.Timestamp = at.UnixNano()
	}
	return m
}

func commValue(m *pb.AdcValue) comm.Value {
	if m.IsVolts {
		return comm.VoltsOf(m.Volts)
	}
	return comm.IntOf(m.Int)
}

// NewAdcValue creates the reply carrying v.
func NewAdcValue(v comm.Value, at time.Time) *AdcValue {
	return &AdcValue{AdcValue: valueMsg(v, at)}
}

// Value converts back to comm.Value.
func (m *AdcValue) Value() comm.Value { return commValue(&m.AdcValue) }

// NewAdcSample creates the event carrying v.
func NewAdcSample(v comm.Value, at time.Time) *AdcSample {
	return &AdcSample{AdcValue: valueMsg(v, at)}
}

// Value converts back to comm.Value.
func (m *AdcSample) Value() comm.Value { return commValue(&m.AdcValue) }
