package comm

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Keywords lead every command line.
const (
	KeywordLED = "led"
	KeywordADC = "adc"
	KeywordDAC = "dac"
)

// Terminator ends every command line written by the host.
const Terminator = "\r"

// Command is a parsed command line. The set of implementations is
// closed, switch on the concrete type to handle it.
type Command interface {
	// Line encodes the command without terminator.
	Line() string

	command()
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Black is the color of a pixel which is off.
var Black = RGB{}

// ParseRGB decodes the first six hex digits of s as RRGGBB.
func ParseRGB(s string) (RGB, error) {
	if len(s) < 6 {
		return RGB{}, malformed("color", s, errors.New("need 6 hex digits"))
	}
	b, err := hex.DecodeString(s[:6])
	if err != nil {
		return RGB{}, malformed("color", s, err)
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// Hex encodes the color as upper-case RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// String implements Stringer.
func (c RGB) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// AdcMode selects the response encoding of ADC reads.
type AdcMode int

// ADC response encodings.
const (
	AdcRaw AdcMode = iota
	AdcVolts
)

// ParseAdcMode maps the wire name to a mode. Only "volts" selects
// AdcVolts, anything else falls back to AdcRaw.
func ParseAdcMode(s string) AdcMode {
	if s == "volts" {
		return AdcVolts
	}
	return AdcRaw
}

// String implements Stringer and returns the wire name.
func (m AdcMode) String() string {
	if m == AdcVolts {
		return "volts"
	}
	return "raw"
}

// LedBrightness sets brightness in percent and turns the LED solid.
type LedBrightness struct {
	Percent float64
}

// LedColor sets the target color and turns the LED solid.
type LedColor struct {
	Color RGB
}

// LedAlert is any other "led" line, it blinks the alert color.
type LedAlert struct {
	Arg string
}

// AdcRead requests an instantaneous ADC read.
type AdcRead struct{}

// AdcRun starts free-running ADC sampling.
type AdcRun struct{}

// AdcStop stops free-running ADC sampling.
type AdcStop struct{}

// AdcDelay sets the period of free-running sampling.
type AdcDelay struct {
	Seconds float64
}

// AdcModeSet selects the response encoding.
type AdcModeSet struct {
	Mode AdcMode
}

// DacOn enables the DAC output.
type DacOn struct{}

// DacOff forces the DAC output to 0.
type DacOff struct{}

// DacLevel sets the DAC level, clamped by the receiver.
type DacLevel struct {
	Level int64
}

// Unknown is a line without a known keyword.
type Unknown struct {
	Text string
}

// Ignored is a line with a known keyword but an unknown sub-command.
// The board takes no action on it.
type Ignored struct {
	Text string
}

func (LedBrightness) command() {}
func (LedColor) command()      {}
func (LedAlert) command()      {}
func (AdcRead) command()       {}
func (AdcRun) command()        {}
func (AdcStop) command()       {}
func (AdcDelay) command()      {}
func (AdcModeSet) command()    {}
func (DacOn) command()         {}
func (DacOff) command()        {}
func (DacLevel) command()      {}
func (Unknown) command()       {}
func (Ignored) command()       {}

// Line implements Command.
func (c LedBrightness) Line() string {
	return KeywordLED + "%" + strconv.FormatFloat(c.Percent, 'f', -1, 64)
}

// Line implements Command.
func (c LedColor) Line() string { return KeywordLED + "#" + c.Color.Hex() }

// Line implements Command.
func (c LedAlert) Line() string { return KeywordLED + c.Arg }

// Line implements Command.
func (AdcRead) Line() string { return KeywordADC + "!" }

// Line implements Command.
func (AdcRun) Line() string { return KeywordADC + "@run" }

// Line implements Command.
func (AdcStop) Line() string { return KeywordADC + "@stop" }

// Line implements Command.
func (c AdcDelay) Line() string { return fmt.Sprintf("%s@delay=%.4f", KeywordADC, c.Seconds) }

// Line implements Command.
func (c AdcModeSet) Line() string { return KeywordADC + "@mode=" + c.Mode.String() }

// Line implements Command.
func (DacOn) Line() string { return KeywordDAC + "@on" }

// Line implements Command.
func (DacOff) Line() string { return KeywordDAC + "@off" }

// Line implements Command.
func (c DacLevel) Line() string { return KeywordDAC + "@level=" + strconv.FormatInt(c.Level, 10) }

// Line implements Command.
func (c Unknown) Line() string { return c.Text }

// Line implements Command.
func (c Ignored) Line() string { return c.Text }

// Encode returns the command line with terminator, ready for writing.
func Encode(cmd Command) []byte {
	return []byte(cmd.Line() + Terminator)
}

// ParseCommand parses one line, surrounding whitespace is ignored.
// A non-nil error means the line must have no effect.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return nil, ErrEmptyLine
	case strings.HasPrefix(line, KeywordLED):
		return parseLED(line[len(KeywordLED):])
	case strings.HasPrefix(line, KeywordADC):
		return parseADC(line, line[len(KeywordADC):])
	case strings.HasPrefix(line, KeywordDAC):
		return parseDAC(line, line[len(KeywordDAC):])
	}
	return Unknown{Text: line}, nil
}

func parseLED(arg string) (Command, error) {
	switch {
	case strings.HasPrefix(arg, "%"):
		pct, err := parseFloat("brightness", arg[1:])
		if err != nil {
			return nil, err
		}
		return LedBrightness{Percent: pct}, nil
	case strings.HasPrefix(arg, "#"):
		color, err := ParseRGB(arg[1:])
		if err != nil {
			return nil, err
		}
		return LedColor{Color: color}, nil
	}
	return LedAlert{Arg: arg}, nil
}

func parseADC(line, arg string) (Command, error) {
	if strings.HasPrefix(arg, "!") {
		return AdcRead{}, nil
	}
	if !strings.HasPrefix(arg, "@") {
		return Ignored{Text: line}, nil
	}
	name, val, hasVal := strings.Cut(arg[1:], "=")
	switch name {
	case "run":
		return AdcRun{}, nil
	case "stop":
		return AdcStop{}, nil
	case "delay":
		if !hasVal {
			return nil, malformed("delay", arg, errors.New("missing value"))
		}
		secs, err := parseFloat("delay", val)
		if err != nil {
			return nil, err
		}
		if secs <= 0 {
			return nil, malformed("delay", val, errors.New("must be positive"))
		}
		return AdcDelay{Seconds: secs}, nil
	case "mode":
		if !hasVal {
			return nil, malformed("mode", arg, errors.New("missing value"))
		}
		return AdcModeSet{Mode: ParseAdcMode(val)}, nil
	}
	return Ignored{Text: line}, nil
}

func parseDAC(line, arg string) (Command, error) {
	if !strings.HasPrefix(arg, "@") {
		return Ignored{Text: line}, nil
	}
	name, val, hasVal := strings.Cut(arg[1:], "=")
	switch name {
	case "on":
		return DacOn{}, nil
	case "off":
		return DacOff{}, nil
	case "level":
		if !hasVal {
			return nil, malformed("level", arg, errors.New("missing value"))
		}
		level, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			// out of range values saturate, the receiver clamps them anyway.
			if numErr, ok := err.(*strconv.NumError); !ok || numErr.Err != strconv.ErrRange {
				return nil, malformed("level", val, err)
			}
		}
		return DacLevel{Level: level}, nil
	}
	return Ignored{Text: line}, nil
}

func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, malformed(field, s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, malformed(field, s, errors.New("not a finite number"))
	}
	return v, nil
}
