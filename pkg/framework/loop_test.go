package framework

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testMsg struct {
	n int
}

func (m *testMsg) NewMessage() Message { return &testMsg{} }

type fixedClock time.Time

func (c fixedClock) Time() time.Time { return time.Time(c) }

func TestLoopPriorityOrder(t *testing.T) {
	var order []string
	record := func(name string) Controller {
		return ControlFunc(func(cc ControlContext) error {
			order = append(order, name)
			return nil
		})
	}
	loop := NewLoop()
	loop.AddController(PrLvPublish, record("publish"))
	loop.AddController(PrLvDevice, record("device"))
	loop.AddController(PrLvCommand, record("command"))
	loop.PreRunAt(PrLvCommand, record("pre"))
	loop.PostRunAt(PrLvCommand, record("post"))

	loop.Step(context.Background())
	require.Equal(t, []string{"device", "pre", "command", "post", "publish"}, order)

	order = nil
	loop.Step(context.Background())
	require.Equal(t, []string{"device", "command", "publish"}, order)
}

func TestLoopMessages(t *testing.T) {
	var seen []int
	loop := NewLoop()
	loop.AddController(PrLvCommand, ControlFunc(func(cc ControlContext) error {
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mc MessageProcessingContext) {
			msg := mc.CurrentMessage().(*testMsg)
			seen = append(seen, msg.n)
			if msg.n%2 == 0 {
				mc.MessageTaken()
			}
		}))
		return nil
	}))
	var left []int
	loop.AddController(PrLvIdle, ControlFunc(func(cc ControlContext) error {
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mc MessageProcessingContext) {
			left = append(left, mc.CurrentMessage().(*testMsg).n)
			mc.MessageTaken()
		}))
		return nil
	}))

	for i := 1; i <= 4; i++ {
		loop.PostMessage(&testMsg{n: i})
	}
	loop.Step(context.Background())
	require.Equal(t, []int{1, 2, 3, 4}, seen)
	require.Equal(t, []int{1, 3}, left)

	seen, left = nil, nil
	loop.Step(context.Background())
	require.Empty(t, seen)
	require.Empty(t, left)
}

func TestLoopClock(t *testing.T) {
	at := time.Unix(42, 0)
	var got time.Time
	loop := NewLoop()
	loop.Clock = fixedClock(at)
	loop.AddController(PrLvTop, ControlFunc(func(cc ControlContext) error {
		got = cc.Time()
		require.Equal(t, PrLvTop, cc.PriorityLevel())
		require.NotNil(t, CtlCtxFrom(cc.Context()))
		return nil
	}))
	loop.Step(context.Background())
	require.Equal(t, at, got)
}

func TestLoopTriggerNext(t *testing.T) {
	ran := make(chan struct{}, 16)
	loop := NewLoop()
	loop.Interval = time.Hour
	loop.AddController(PrLvCommand, ControlFunc(func(cc ControlContext) error {
		ran <- struct{}{}
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()

	loop.PostMessage(&testMsg{})
	loop.TriggerNext()
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("loop not woken up")
	}
	cancel()
	require.Equal(t, context.Canceled, <-errCh)
}
