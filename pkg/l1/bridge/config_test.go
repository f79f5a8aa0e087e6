package bridge

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "bridge")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	fn := filepath.Join(dir, "bridge.yaml")
	require.NoError(t, ioutil.WriteFile(fn, []byte(content), 0644))
	return fn
}

func TestLoad(t *testing.T) {
	fn := writeConfigFile(t, `
controller:
  id: bench-1
  mqtt: mqtt://broker:1883/lab/
  labels:
    bench: "1"
board:
  port: /dev/ttyACM0
interval: 50ms
`)
	conf := NewConfig()
	require.NoError(t, conf.Load(fn))
	require.Equal(t, "bench-1", conf.Controller.Info.Ref.ID)
	require.Equal(t, ControllerType, conf.Controller.Info.Ref.Type)
	require.Equal(t, "mqtt://broker:1883/lab/", conf.Controller.MQTTBrokerURL)
	require.Equal(t, map[string]string{"bench": "1"}, conf.Controller.Info.Meta.Labels)
	require.Equal(t, "/dev/ttyACM0", conf.Board.Port)
	require.Equal(t, 9600, conf.Board.Baud)
	require.Equal(t, 50*time.Millisecond, conf.Interval)
	require.Equal(t, Default().Tries, conf.Tries)

	// loading must not alter the defaults
	require.NotEqual(t, "bench-1", Default().Controller.Info.Ref.ID)
}

func TestLoadErrors(t *testing.T) {
	conf := NewConfig()
	require.Error(t, conf.Load(filepath.Join(os.TempDir(), "no-such-bridge.yaml")))

	fn := writeConfigFile(t, "board:\n  speed: 9600\n")
	err := conf.Load(fn)
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not parse config file")
}
