package mqtt

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/labtrinket/pkg/l1"
)

func TestReadWriterTopics(t *testing.T) {
	rw := NewPacketReadWriter(nil).ForController(l1.ControllerRef{Type: "trinket", ID: "bench"})
	require.Equal(t, "trinket/bench/cmd", rw.SubTopic)
	require.Equal(t, "trinket/bench/msg", rw.PubTopic)
}

func TestReadWriterClose(t *testing.T) {
	rw := NewPacketReadWriter(nil)
	rw.handleMsg("trinket/bench/cmd", []byte{1, 2})
	pkt, err := rw.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, pkt)

	require.NoError(t, rw.Close())
	require.NoError(t, rw.Close())
	_, err = rw.ReadPacket()
	require.Equal(t, io.EOF, err)
	for i := 0; i < 32; i++ {
		rw.handleMsg("trinket/bench/cmd", []byte{3})
	}
}
