package firmware

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/labtrinket/pkg/framework"
	"github.com/robotalks/labtrinket/pkg/l0/comm"
	"github.com/robotalks/labtrinket/pkg/link"
)

// DefaultPollInterval is the pause after an idle tick.
const DefaultPollInterval = 5 * time.Millisecond

// Loop is the cooperative main loop of the board.
type Loop struct {
	Device *Device
	Port   link.Port
	Clock  fx.TimeSource
	// PollInterval bounds how fast pending input is noticed, 0 spins.
	PollInterval time.Duration
	// Echo writes each received line back like the board's line reader.
	Echo bool
}

// NewLoop creates a Loop running a new Device on board and port.
func NewLoop(board Board, port link.Port) *Loop {
	return &Loop{
		Device:       NewDevice(board, port),
		Port:         port,
		Clock:        board.Clock,
		PollInterval: DefaultPollInterval,
		Echo:         true,
	}
}

// Step runs one iteration: it handles exactly one input line if any
// byte is pending, otherwise it runs the idle tick. idle reports which
// branch ran. Only link errors are returned.
func (l *Loop) Step() (idle bool, err error) {
	n, err := l.Port.Buffered()
	if err != nil {
		return false, err
	}
	if n == 0 {
		if err := l.Device.Idle(l.Clock.Time()); err != nil {
			glog.Warningf("idle: %v", err)
		}
		return true, nil
	}
	line, err := l.Port.ReadLine()
	if err != nil {
		return false, err
	}
	if l.Echo && line != "" {
		if _, err := io.WriteString(l.Port, line+"\r\n"); err != nil {
			glog.Warningf("echo: %v", err)
		}
	}
	if err := l.Device.Dispatch(line); err != nil && !errors.Is(err, comm.ErrEmptyLine) {
		glog.V(1).Infof("dispatch %q: %v", line, err)
	}
	return false, nil
}

// Run implements Runnable. The port is closed when Run returns.
func (l *Loop) Run(ctx context.Context) error {
	return fx.RunWithContextCloser(ctx, l.Port, func() error {
		for {
			idle, err := l.Step()
			if err != nil {
				if errors.Is(err, link.ErrClosed) && ctx.Err() != nil {
					return ctx.Err()
				}
				return err
			}
			if !idle || l.PollInterval <= 0 {
				continue
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(l.PollInterval):
			}
		}
	})
}
