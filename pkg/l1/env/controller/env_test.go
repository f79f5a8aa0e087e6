package controller

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/labtrinket/pkg/l1"
)

func TestNewEnv(t *testing.T) {
	conf := NewConfig()
	conf.Info.Ref = l1.ControllerRef{Type: "trinket", ID: "bench"}
	conf.MQTTBrokerURL = "mqtt://localhost:1883/lab/"
	e, err := conf.NewEnv()
	require.NoError(t, err)
	require.Len(t, e.Registrar.Registrars, 1)
	require.Equal(t, []string{"mqtt://localhost:1883/lab/"}, e.RegistryURLs)

	conf.MQTTBrokerURL = ""
	_, err = conf.NewEnv()
	require.Error(t, err)

	conf.Info.Ref.ID = ""
	conf.Stdio = true
	_, err = conf.NewEnv()
	require.Error(t, err)
}

func TestDefaultID(t *testing.T) {
	require.NotEmpty(t, Default().Info.Ref.ID)
}
