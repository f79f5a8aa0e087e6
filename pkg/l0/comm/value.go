package comm

import (
	"fmt"
	"strconv"
	"strings"
)

// Sentinel prefixes every line originated by the board.
const Sentinel = '>'

// Value type tags following the sentinel.
const (
	TagInt   = 'i'
	TagVolts = 'v'
)

// Reference voltage and full scale of the ADC code.
const (
	VoltsRef  = 3.3
	FullScale = 65536
	MaxLevel  = FullScale - 1
)

// ValueKind distinguishes the payload of a Value.
type ValueKind int

// Value kinds.
const (
	IntValue ValueKind = iota
	VoltsValue
)

// Value is a reading reported by the board, either the raw ADC code
// or the code scaled to volts.
type Value struct {
	Kind  ValueKind
	Int   int32
	Volts float32
}

// IntOf creates a raw Value.
func IntOf(code int32) Value {
	return Value{Kind: IntValue, Int: code}
}

// VoltsOf creates a voltage Value.
func VoltsOf(v float32) Value {
	return Value{Kind: VoltsValue, Volts: v}
}

// ValueOf encodes an ADC code according to mode.
func ValueOf(code uint16, mode AdcMode) Value {
	if mode == AdcVolts {
		return VoltsOf(CodeToVolts(code))
	}
	return IntOf(int32(code))
}

// CodeToVolts scales an ADC code to volts.
func CodeToVolts(code uint16) float32 {
	return float32(float64(code) * VoltsRef / FullScale)
}

// LevelForVolts converts a voltage into a DAC level. Out-of-range
// voltages are clamped to [0, VoltsRef].
func LevelForVolts(v float64) int64 {
	if v > VoltsRef {
		v = VoltsRef
	}
	if v < 0 {
		v = 0
	}
	level := int64(FullScale * v / VoltsRef)
	if level > MaxLevel {
		level = MaxLevel
	}
	return level
}

// Float64 returns the payload regardless of kind.
func (v Value) Float64() float64 {
	if v.Kind == VoltsValue {
		return float64(v.Volts)
	}
	return float64(v.Int)
}

// String formats the payload as it appears on the wire.
func (v Value) String() string {
	if v.Kind == VoltsValue {
		return fmt.Sprintf("%.5f", v.Volts)
	}
	return strconv.FormatInt(int64(v.Int), 10)
}

// Line encodes the response line without terminator.
func (v Value) Line() string {
	tag := TagInt
	if v.Kind == VoltsValue {
		tag = TagVolts
	}
	return string([]rune{Sentinel, rune(tag)}) + v.String()
}

// ParseValue decodes a response line.
func ParseValue(line string) (Value, error) {
	line = strings.TrimSpace(line)
	if len(line) == 0 || line[0] != Sentinel {
		return Value{}, ErrNotResponse
	}
	if len(line) < 3 {
		return Value{}, fmt.Errorf("%q: %w", line, ErrNoValue)
	}
	payload := line[2:]
	switch line[1] {
	case TagInt:
		n, err := strconv.ParseInt(payload, 10, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%q: %w: %v", line, ErrNoValue, err)
		}
		return IntOf(int32(n)), nil
	case TagVolts:
		f, err := strconv.ParseFloat(payload, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%q: %w: %v", line, ErrNoValue, err)
		}
		return VoltsOf(float32(f)), nil
	}
	return Value{}, fmt.Errorf("%q: %w: unknown tag %q", line, ErrNoValue, line[1])
}
