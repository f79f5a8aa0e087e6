package comm

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/labtrinket/pkg/framework"
	"github.com/robotalks/labtrinket/pkg/l0/comm"
	"github.com/robotalks/labtrinket/pkg/l1"
	"github.com/robotalks/labtrinket/pkg/l1/comm/stream"
	"github.com/robotalks/labtrinket/pkg/l1/msgs"
)

type pipeTestEnv struct {
	registrar Registrar
	conn      ControllerConn
	events    chan fx.Message
	cancel    func()
	done      chan error
}

func newPipeTestEnv(t *testing.T) *pipeTestEnv {
	a, b := net.Pipe()
	env := &pipeTestEnv{events: make(chan fx.Message, 4), done: make(chan error, 1)}
	env.registrar.Init(stream.New(a))
	env.conn.Init(stream.New(b))

	ctlLoop := fx.NewLoop().Add(&env.registrar, &UnsupportedCommands{})
	ctlLoop.AddController(fx.PrLvCommand, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mc fx.MessageProcessingContext) {
			cmd, ok := mc.CurrentMessage().(*l1.CommandMsg)
			if !ok {
				return
			}
			if _, ok := cmd.Command.Msg().(*msgs.StatusQuery); ok {
				mc.MessageTaken()
				status := &msgs.Status{}
				status.Red, status.DacLevel = 128, 30000
				cmd.Command.Done(status)
			}
		}))
		return nil
	}))

	connLoop := fx.NewLoop().Add(&env.conn)
	connLoop.AddController(fx.PrLvCommand, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mc fx.MessageProcessingContext) {
			mc.MessageTaken()
			env.events <- mc.CurrentMessage()
		}))
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	env.cancel = cancel
	go func() {
		env.done <- fx.NewRunnerWith(ctx).Go(ctlLoop, connLoop).Wait()
	}()
	t.Cleanup(env.stop)
	return env
}

func (e *pipeTestEnv) stop() {
	e.cancel()
	<-e.done
}

func TestCommandReply(t *testing.T) {
	env := newPipeTestEnv(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	reply, err := env.conn.Do(ctx, &msgs.StatusQuery{})
	require.NoError(t, err)
	status, ok := reply.(*msgs.Status)
	require.True(t, ok)
	require.Equal(t, int32(128), status.Red)
	require.Equal(t, int64(30000), status.DacLevel)
}

func TestUnsupportedCommand(t *testing.T) {
	env := newPipeTestEnv(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := env.conn.Do(ctx, &msgs.LedOff{})
	cmdErr, ok := err.(*msgs.CommandErr)
	require.True(t, ok, "unexpected error %v", err)
	require.Equal(t, msgs.ErrUnsupportedCommand.Error(), cmdErr.Message)
}

func TestEvent(t *testing.T) {
	env := newPipeTestEnv(t)
	sample := msgs.NewAdcSample(comm.IntOf(2048), time.Unix(1, 0))
	require.NoError(t, env.registrar.SendEvent(context.Background(), sample))
	select {
	case msg := <-env.events:
		got, ok := msg.(*msgs.AdcSample)
		require.True(t, ok)
		require.Equal(t, comm.IntOf(2048), got.Value())
	case <-time.After(2 * time.Second):
		t.Fatal("event not received")
	}
}

func TestPipeRejectsWrongKind(t *testing.T) {
	var p Pipe
	require.Equal(t, ErrNotCommand, p.SendCommandMsg(msgs.NewAdcSample(comm.IntOf(1), time.Time{}), 1))
	require.Equal(t, ErrNotEvent, p.SendEventMsg(&msgs.LedOff{}))
}
