package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	start := time.Unix(100, 0)
	testCases := []struct {
		name   string
		conf   Config
		at     time.Duration
		expect uint16
	}{
		{"const", Config{Wave: WaveConstant, Level: 1234}, time.Hour, 1234},
		{"sine start", Config{Wave: WaveSine, Level: 32768, Period: 4 * time.Second}, 0, 32768},
		{"sine peak", Config{Wave: WaveSine, Level: 32768, Period: 4 * time.Second}, time.Second, 65535},
		{"sine trough", Config{Wave: WaveSine, Level: 32768, Period: 4 * time.Second}, 3 * time.Second, 1},
		{"sine low level", Config{Wave: WaveSine, Level: 1000, Period: 4 * time.Second}, time.Second, 2000},
		{"ramp start", Config{Wave: WaveRamp, Period: 2 * time.Second}, 0, 0},
		{"ramp half", Config{Wave: WaveRamp, Period: 2 * time.Second}, 3 * time.Second, 32767},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src, err := tc.conf.Source(start)
			require.NoError(t, err)
			require.Equal(t, tc.expect, src(start.Add(tc.at)))
		})
	}
}

func TestSourceErrors(t *testing.T) {
	for _, conf := range []Config{
		{Wave: "square", Period: time.Second},
		{Wave: WaveSine},
		{Wave: WaveRamp, Period: -time.Second},
		{Wave: WaveConstant, Level: 70000},
	} {
		_, err := conf.Source(time.Now())
		require.Error(t, err, "%+v", conf)
	}
}

func TestBoardSource(t *testing.T) {
	clock := NewClock(time.Unix(0, 0))
	board := NewBoard(clock)
	conf := Config{Wave: WaveRamp, Period: 10 * time.Second}
	src, err := conf.Source(clock.Time())
	require.NoError(t, err)
	board.In.Source = src
	require.Equal(t, uint16(0), board.In.Read())
	clock.Advance(5 * time.Second)
	require.Equal(t, uint16(32767), board.In.Read())
}
