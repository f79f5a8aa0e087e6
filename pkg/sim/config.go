package sim

import (
	"flag"
	"fmt"
	"math"
	"time"
)

// Waveforms for the analog input.
const (
	WaveConstant = "const"
	WaveSine     = "sine"
	WaveRamp     = "ramp"
)

// Config defines the simulated analog input.
type Config struct {
	Wave   string
	Level  uint
	Period time.Duration
}

var defaultConfig = Config{
	Wave:   WaveSine,
	Level:  32768,
	Period: 10 * time.Second,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Wave, "wave", defaultConfig.Wave, "Analog input waveform: const, sine or ramp.")
	flag.UintVar(&defaultConfig.Level, "level", defaultConfig.Level, "Analog input code for const, mid level for sine.")
	flag.DurationVar(&defaultConfig.Period, "period", defaultConfig.Period, "Period of sine and ramp waveforms.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates the default configuration.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Source builds the analog input source anchored at start.
func (c *Config) Source(start time.Time) (SourceFunc, error) {
	if c.Level > math.MaxUint16 {
		return nil, fmt.Errorf("level %d out of range", c.Level)
	}
	level := float64(c.Level)
	switch c.Wave {
	case WaveConstant:
		code := uint16(c.Level)
		return func(time.Time) uint16 { return code }, nil
	case WaveSine, WaveRamp:
		if c.Period <= 0 {
			return nil, fmt.Errorf("invalid period %v", c.Period)
		}
	default:
		return nil, fmt.Errorf("unknown waveform %q", c.Wave)
	}
	period := c.Period.Seconds()
	if c.Wave == WaveRamp {
		return func(t time.Time) uint16 {
			phase := math.Mod(t.Sub(start).Seconds(), period) / period
			return uint16(phase * math.MaxUint16)
		}, nil
	}
	amp := math.Min(level, math.MaxUint16-level)
	return func(t time.Time) uint16 {
		phase := 2 * math.Pi * t.Sub(start).Seconds() / period
		return uint16(math.Round(level + amp*math.Sin(phase)))
	}, nil
}
