package v1

import (
	"reflect"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	require.NotEmpty(t, proto.FileDescriptor("trinket/v1/trinket.proto"))
	require.Equal(t, reflect.TypeOf(&Status{}), proto.MessageType("trinket.v1.Status"))
	_, index := (&AdcValue{}).Descriptor()
	require.Equal(t, []int{9}, index)
}

func TestStatusRoundTrip(t *testing.T) {
	in := &Status{Red: 1, Brightness: 50, DacLevel: 7, Value: &AdcValue{IsVolts: true, Volts: 1.5}}
	data, err := proto.Marshal(in)
	require.NoError(t, err)
	out := &Status{}
	require.NoError(t, proto.Unmarshal(data, out))
	require.True(t, proto.Equal(in, out))
}
