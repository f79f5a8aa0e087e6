package comm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueLine(t *testing.T) {
	require.Equal(t, ">i2048", IntOf(2048).Line())
	require.Equal(t, ">v1.65000", ValueOf(32768, AdcVolts).Line())
	require.Equal(t, ">i32768", ValueOf(32768, AdcRaw).Line())
	require.Equal(t, ">v0.00000", ValueOf(0, AdcVolts).Line())
}

func TestCodeToVolts(t *testing.T) {
	require.InDelta(t, 1.65, CodeToVolts(32768), 1e-4)
	require.InDelta(t, 3.3*65535/65536, CodeToVolts(65535), 1e-4)
}

func TestLevelForVolts(t *testing.T) {
	require.Equal(t, int64(0), LevelForVolts(-1))
	require.Equal(t, int64(32768), LevelForVolts(1.65))
	require.Equal(t, int64(MaxLevel), LevelForVolts(3.3))
	require.Equal(t, int64(MaxLevel), LevelForVolts(12))
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(">i2048\r\n")
	require.NoError(t, err)
	require.Equal(t, IntOf(2048), v)
	require.Equal(t, float64(2048), v.Float64())

	v, err = ParseValue(">v1.65000")
	require.NoError(t, err)
	require.Equal(t, VoltsValue, v.Kind)
	require.InDelta(t, 1.65, v.Float64(), 1e-6)

	_, err = ParseValue("adc!")
	require.Equal(t, ErrNotResponse, err)

	for _, line := range []string{">", ">i", ">x12", ">iabc", ">v1.2.3"} {
		_, err = ParseValue(line)
		require.True(t, errors.Is(err, ErrNoValue), "%q: %v", line, err)
	}
}
