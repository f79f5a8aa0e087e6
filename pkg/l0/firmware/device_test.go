package firmware

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/labtrinket/pkg/l0/comm"
	"github.com/robotalks/labtrinket/pkg/sim"
)

type deviceTestEnv struct {
	t     *testing.T
	clock *sim.Clock
	board *sim.Board
	out   bytes.Buffer
	dev   *Device
}

func newDeviceTestEnv(t *testing.T) *deviceTestEnv {
	clock := sim.NewClock(time.Unix(1000, 0))
	e := &deviceTestEnv{t: t, clock: clock, board: sim.NewBoard(clock)}
	e.dev = NewDevice(simBoard(e.board), &e.out)
	return e
}

func simBoard(b *sim.Board) Board {
	return Board{In: b.In, Out: b.Out, Pixel: b.Pixel, Clock: b.Clock}
}

func (e *deviceTestEnv) dispatch(lines ...string) *deviceTestEnv {
	for _, line := range lines {
		require.NoError(e.t, e.dev.Dispatch(line), line)
	}
	return e
}

func (e *deviceTestEnv) advance(d time.Duration) *deviceTestEnv {
	e.clock.Advance(d)
	return e
}

func (e *deviceTestEnv) idle() *deviceTestEnv {
	require.NoError(e.t, e.dev.Idle(e.clock.Time()))
	return e
}

func (e *deviceTestEnv) responses() []string {
	text := e.out.String()
	e.out.Reset()
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\r\n"), "\r\n")
}

func (e *deviceTestEnv) shown() comm.RGB {
	return e.board.Pixel.State().Color
}

func TestBootDefaults(t *testing.T) {
	e := newDeviceTestEnv(t)
	require.Equal(t, LedState{Mode: LedOff, Brightness: 0.95}, e.dev.LED)
	require.Equal(t, AdcState{Delay: time.Second, Mode: comm.AdcRaw}, e.dev.ADC)
	require.Equal(t, DacState{Level: 30000}, e.dev.DAC)
	require.Equal(t, sim.PixelState{Brightness: 0.95, Shows: 1}, e.board.Pixel.State())
	require.Equal(t, uint16(0), e.board.Out.Code())
	require.Equal(t, 1, e.board.Out.Writes())
	require.Empty(t, e.responses())
}

func TestLedColorRoundTrip(t *testing.T) {
	for _, hex := range []string{"000000", "FFFFFF", "FA0C70", "0a0b0c", "80FF01"} {
		t.Run(hex, func(t *testing.T) {
			e := newDeviceTestEnv(t)
			e.dispatch("led#" + hex).idle()
			expect, err := comm.ParseRGB(hex)
			require.NoError(t, err)
			require.Equal(t, LedSolid, e.dev.LED.Mode)
			require.Equal(t, expect, e.dev.LED.Target)
			require.Equal(t, expect, e.shown())
			require.Equal(t, strings.ToUpper(hex), e.shown().Hex())
		})
	}
}

func TestLedBrightness(t *testing.T) {
	e := newDeviceTestEnv(t)
	for p := 0; p <= 100; p++ {
		e.dispatch(fmt.Sprintf("led%%%d", p))
		require.Equal(t, float64(p)/100, e.dev.LED.Brightness)
		require.Equal(t, LedSolid, e.dev.LED.Mode)
	}
	e.dispatch("led%12.5").idle()
	require.Equal(t, 0.125, e.board.Pixel.State().Brightness)
	e.dispatch("led%150")
	require.Equal(t, 1.0, e.dev.LED.Brightness)
	e.dispatch("led%-3")
	require.Equal(t, 0.0, e.dev.LED.Brightness)
}

func TestLedOffShowsBlack(t *testing.T) {
	e := newDeviceTestEnv(t)
	e.dev.LED.Target = comm.RGB{R: 255}
	e.idle()
	require.Equal(t, comm.Black, e.shown())
}

func TestLedBlink(t *testing.T) {
	e := newDeviceTestEnv(t)
	e.dispatch("led#00FF00", "ledflash")
	require.Equal(t, LedBlink, e.dev.LED.Mode)
	require.Equal(t, AlertColor, e.dev.LED.Target)

	e.idle()
	require.Equal(t, comm.Black, e.shown())
	e.advance(BlinkInterval - time.Millisecond).idle()
	require.Equal(t, comm.Black, e.shown())
	e.advance(time.Millisecond).idle()
	require.Equal(t, AlertColor, e.shown())
	e.advance(BlinkInterval / 2).idle()
	require.Equal(t, AlertColor, e.shown())
	e.advance(BlinkInterval / 2).idle()
	require.Equal(t, comm.Black, e.shown())

	e.dispatch("led#0000FF").idle()
	require.Equal(t, comm.RGB{B: 255}, e.shown())
}

func TestLedBlinkRestartsDark(t *testing.T) {
	e := newDeviceTestEnv(t)
	e.dispatch("ledflash").idle()
	e.advance(BlinkInterval).idle()
	require.Equal(t, AlertColor, e.shown())

	e.dispatch("led#00FF00", "xyz").idle()
	require.Equal(t, comm.Black, e.shown())
	e.advance(BlinkInterval - time.Millisecond).idle()
	require.Equal(t, comm.Black, e.shown())
	e.advance(time.Millisecond).idle()
	require.Equal(t, UnknownColor, e.shown())
}

func TestAdcRunTiming(t *testing.T) {
	const eps = time.Millisecond
	e := newDeviceTestEnv(t)
	e.board.In.Set(2048)
	e.dispatch("adc@delay=0.5000", "adc@run")
	require.True(t, e.dev.ADC.Running)

	e.advance(500*time.Millisecond - eps).idle()
	require.Empty(t, e.responses())
	e.advance(eps).idle()
	require.Empty(t, e.responses(), "sample due strictly after the delay")
	e.advance(eps).idle()
	require.Equal(t, []string{">i2048"}, e.responses())
	e.idle()
	require.Empty(t, e.responses())

	e.advance(500 * time.Millisecond).advance(eps).idle()
	require.Equal(t, []string{">i2048"}, e.responses())

	e.dispatch("adc@stop").advance(time.Hour).idle()
	require.Empty(t, e.responses())
}

func TestAdcHugeDelay(t *testing.T) {
	e := newDeviceTestEnv(t)
	e.dispatch("adc@delay=1e10", "adc@run")
	require.Equal(t, maxDelay, e.dev.ADC.Delay)
	e.advance(time.Millisecond).idle()
	require.Empty(t, e.responses())
	e.advance(24 * 365 * time.Hour).idle()
	require.Empty(t, e.responses())

	e.dispatch("adc@delay=0.0010")
	require.Equal(t, time.Millisecond, e.dev.ADC.Delay)
	e.advance(2 * time.Millisecond).idle()
	require.Len(t, e.responses(), 1)
}

func TestAdcRunResetsTimer(t *testing.T) {
	e := newDeviceTestEnv(t)
	e.advance(time.Hour)
	e.dispatch("adc@run").advance(time.Second - time.Millisecond).idle()
	require.Empty(t, e.responses())
}

func TestAdcRead(t *testing.T) {
	e := newDeviceTestEnv(t)
	e.board.In.Set(32768)
	e.dispatch("adc!")
	require.Equal(t, []string{">i32768"}, e.responses())
	require.Equal(t, LedSolid, e.dev.LED.Mode)

	e.dispatch("adc@mode=volts", "adc!")
	lines := e.responses()
	require.Len(t, lines, 1)
	require.Equal(t, ">v1.65000", lines[0])
	v, err := comm.ParseValue(lines[0])
	require.NoError(t, err)
	require.InDelta(t, 1.65, v.Float64(), 1e-4)
	require.False(t, e.dev.ADC.Running)
}

func TestDacClamp(t *testing.T) {
	testCases := []struct {
		line   string
		expect uint16
	}{
		{"dac@level=70000", 65535},
		{"dac@level=-5", 0},
		{"dac@level=65535", 65535},
		{"dac@level=1234", 1234},
	}
	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			e := newDeviceTestEnv(t)
			e.dispatch("dac@on", tc.line)
			require.Equal(t, tc.expect, e.dev.DAC.Level)
			require.Equal(t, tc.expect, e.board.Out.Code())
		})
	}
}

func TestDacOnOff(t *testing.T) {
	e := newDeviceTestEnv(t)
	e.dispatch("dac@level=1234")
	require.Equal(t, uint16(0), e.board.Out.Code())
	e.dispatch("dac@on")
	require.Equal(t, uint16(1234), e.board.Out.Code())
	e.dispatch("dac@off")
	require.Equal(t, uint16(0), e.board.Out.Code())
	require.Equal(t, uint16(1234), e.dev.DAC.Level)
	e.dispatch("dac@on")
	require.Equal(t, uint16(1234), e.board.Out.Code())
}

func TestUnknownCommand(t *testing.T) {
	e := newDeviceTestEnv(t)
	e.dispatch("adc@run", "dac@on", "dac@level=100")
	adc, dac := e.dev.ADC, e.dev.DAC
	e.dispatch("xyz123")
	require.Equal(t, LedBlink, e.dev.LED.Mode)
	require.Equal(t, UnknownColor, e.dev.LED.Target)
	require.Equal(t, comm.RGB{B: 50}, e.dev.LED.Target)
	require.Equal(t, adc, e.dev.ADC)
	require.Equal(t, dac, e.dev.DAC)
	require.Empty(t, e.responses())
}

func TestIgnoredAndMalformed(t *testing.T) {
	e := newDeviceTestEnv(t)
	e.dispatch("led#123456", "adc@run")
	led, adc, dac := e.dev.LED, e.dev.ADC, e.dev.DAC
	writes := e.board.Out.Writes()

	e.dispatch("adc@foo", "dacX", "dac@up")
	for _, line := range []string{"led%abc", "led#12", "adc@delay=x", "adc@delay=0", "dac@level=", "dac@level=1.5"} {
		err := e.dev.Dispatch(line)
		require.True(t, errors.Is(err, comm.ErrMalformed), "%q: %v", line, err)
	}
	require.True(t, errors.Is(e.dev.Dispatch("  "), comm.ErrEmptyLine))

	require.Equal(t, led, e.dev.LED)
	require.Equal(t, adc, e.dev.ADC)
	require.Equal(t, dac, e.dev.DAC)
	require.Equal(t, writes, e.board.Out.Writes())
	require.Empty(t, e.responses())
}
