package trinket

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/labtrinket/pkg/l0/comm"
	"github.com/robotalks/labtrinket/pkg/link"
)

type fakeConn struct {
	written bytes.Buffer
	lines   []string
	resets  int
	readErr error
}

func (c *fakeConn) Write(p []byte) (int, error) {
	return c.written.Write(p)
}

func (c *fakeConn) Buffered() (n int, err error) {
	for _, l := range c.lines {
		n += len(l) + 2
	}
	return n, nil
}

func (c *fakeConn) ReadLine() (string, error) {
	if c.readErr != nil {
		return "", c.readErr
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, nil
}

func (c *fakeConn) ResetInputBuffer() error {
	c.resets++
	c.lines = nil
	return nil
}

func (c *fakeConn) sent() []string {
	text := c.written.String()
	c.written.Reset()
	return strings.SplitAfter(text, "\r")[:strings.Count(text, "\r")]
}

func TestAdcGetValue(t *testing.T) {
	testCases := []struct {
		name   string
		lines  []string
		tries  int
		ok     bool
		value  comm.Value
		remain []string
	}{
		{
			name:   "skips echo",
			lines:  []string{"adc@mode=raw", "adc!", ">i2048", "junk"},
			tries:  DefaultTries,
			ok:     true,
			value:  comm.IntOf(2048),
			remain: []string{"junk"},
		},
		{
			name:  "volts",
			lines: []string{">v1.65000"},
			tries: DefaultTries,
			ok:    true,
			value: comm.VoltsOf(1.65),
		},
		{
			name:   "budget exhausted",
			lines:  []string{"adc!", "adc!", ">i1"},
			tries:  2,
			remain: []string{">i1"},
		},
		{
			name:  "nothing pending",
			tries: DefaultTries,
		},
		{
			name:  "noise only",
			lines: []string{">", ">x1", "hello"},
			tries: DefaultTries,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conn := &fakeConn{lines: tc.lines}
			d := New(conn)
			ok, err := d.AdcGetValue(tc.tries)
			require.NoError(t, err)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.value, d.Value())
			require.Equal(t, tc.remain, append([]string(nil), conn.lines...))
		})
	}
}

func TestAdcGetValueErrors(t *testing.T) {
	conn := &fakeConn{lines: []string{"adc!"}, readErr: link.ErrTimeout}
	ok, err := New(conn).AdcGetValue(DefaultTries)
	require.NoError(t, err)
	require.False(t, ok)

	conn.readErr = link.ErrTruncated
	ok, err = New(conn).AdcGetValue(DefaultTries)
	require.NoError(t, err)
	require.False(t, ok)

	failure := errors.New("unplugged")
	conn.readErr = failure
	ok, err = New(conn).AdcGetValue(DefaultTries)
	require.Equal(t, failure, err)
	require.False(t, ok)
}

func TestNewLineTimeout(t *testing.T) {
	a, b := link.Pipe()
	defer a.Close()
	defer b.Close()
	b.ReadTimeout = time.Second
	New(a)
	New(b)
	require.Equal(t, DefaultLineTimeout, a.ReadTimeout)
	require.Equal(t, time.Second, b.ReadTimeout)
}

func TestCommandLines(t *testing.T) {
	testCases := []struct {
		name   string
		op     func(*Driver) error
		expect []string
	}{
		{"request", (*Driver).AdcRequestValue, []string{"adc!\r"}},
		{"options", (*Driver).AdcWriteOptions, []string{"adc@delay=1.0000\r", "adc@mode=raw\r"}},
		{"run", (*Driver).AdcRun, []string{"adc@delay=1.0000\r", "adc@mode=raw\r", "adc@run\r"}},
		{"stop", (*Driver).AdcStop, []string{"adc@stop\r"}},
		{"volts", func(d *Driver) error { return d.AdcVoltMode(true) }, []string{"adc@mode=volts\r"}},
		{"delay", func(d *Driver) error { return d.AdcDelay(0.25) }, []string{"adc@delay=0.2500\r"}},
		{"dac on", (*Driver).DacOn, []string{"dac@on\r"}},
		{"dac off", (*Driver).DacOff, []string{"dac@off\r"}},
		{"dac level", func(d *Driver) error { return d.DacLevel(70000) }, []string{"dac@level=70000\r"}},
		{"dac volts", func(d *Driver) error { return d.DacVolts(1.65) }, []string{"dac@level=32768\r"}},
		{"dac volts high", func(d *Driver) error { return d.DacVolts(5) }, []string{"dac@level=65535\r"}},
		{"dac volts low", func(d *Driver) error { return d.DacVolts(-1) }, []string{"dac@level=0\r"}},
		{"led on", (*Driver).LedOn, []string{"led%100\r", "led#800000\r"}},
		{"led off", (*Driver).LedOff, []string{"led%0\r"}},
		{"color", func(d *Driver) error { return d.LedSetColor(250, 12, 112) }, []string{"led#FA0C70\r"}},
		{"brightness", func(d *Driver) error { return d.LedSetBrightness(75) }, []string{"led%75\r"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conn := &fakeConn{}
			require.NoError(t, tc.op(New(conn)))
			require.Equal(t, tc.expect, conn.sent())
		})
	}
}

func TestAdcRunResetsInput(t *testing.T) {
	conn := &fakeConn{lines: []string{">i1", "adc@run"}}
	d := New(conn)
	d.StageBrightness(50)
	require.NoError(t, d.AdcVoltMode(true))
	require.NoError(t, d.AdcDelay(0.5))
	conn.sent()
	require.NoError(t, d.AdcRun())
	require.Equal(t, []string{"adc@delay=0.5000\r", "adc@mode=volts\r", "adc@run\r"}, conn.sent())
	require.Equal(t, 1, conn.resets)
	require.Empty(t, conn.lines)
}

func TestLedRanges(t *testing.T) {
	conn := &fakeConn{}
	d := New(conn)
	require.NoError(t, d.LedSetColor(-1, 300, 7))
	require.NoError(t, d.LedSetBrightness(101))
	require.NoError(t, d.LedSetBrightness(-0.5))
	require.Equal(t, []string{"led#800007\r", "led%100\r", "led%100\r"}, conn.sent())

	d.StageColor(1, 2, 3)
	d.StageBrightness(12.5)
	require.Empty(t, conn.sent())
	require.NoError(t, d.LedOff())
	require.NoError(t, d.LedOn())
	require.Equal(t, []string{"led%0\r", "led%12.5\r", "led#010203\r"}, conn.sent())

	s := d.Snapshot()
	require.Equal(t, Snapshot{Red: 1, Green: 2, Blue: 3, Brightness: 12.5, Delay: 1}, s)
}

func TestDefaultSnapshot(t *testing.T) {
	s := New(&fakeConn{}).Snapshot()
	require.Equal(t, 128, s.Red)
	require.Zero(t, s.Green)
	require.Zero(t, s.Blue)
	require.Equal(t, 100.0, s.Brightness)
	require.Equal(t, 1.0, s.Delay)
	require.False(t, s.Volts)
	require.Equal(t, comm.IntOf(0), s.Value)
}
