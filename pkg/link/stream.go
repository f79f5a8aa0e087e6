package link

import (
	"io"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/labtrinket/pkg/l0/comm"
)

// Port is the serial channel as seen by both the board and the host.
type Port interface {
	io.Writer
	io.Closer
	// Buffered returns the number of received bytes not yet read,
	// it never blocks.
	Buffered() (int, error)
	// ReadLine blocks until a full line is available and returns it
	// without terminator.
	ReadLine() (string, error)
	// ResetInputBuffer discards all received bytes.
	ResetInputBuffer() error
}

// Stream implements Port over any io.ReadWriteCloser. A background
// routine keeps reading and splitting lines so Buffered never blocks.
type Stream struct {
	// ReadTimeout bounds ReadLine, 0 waits forever. When it expires
	// with an incomplete line pending, that partial line is consumed and
	// returned with ErrTruncated.
	ReadTimeout time.Duration

	rw   io.ReadWriteCloser
	lock sync.Mutex
	cond *sync.Cond
	wg   sync.WaitGroup

	parser  comm.LineParser
	lines   []bufferedLine
	partial int // raw bytes of the incomplete line
	pending int // raw bytes received and not read
	err     error
	closed  bool
}

type bufferedLine struct {
	text string
	size int
}

// NewStream wraps rw and starts reading.
func NewStream(rw io.ReadWriteCloser) *Stream {
	s := &Stream{rw: rw}
	s.cond = sync.NewCond(&s.lock)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.readRoutine()
	}()
	return s
}

// Buffered implements Port.
func (s *Stream) Buffered() (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.pending > 0 {
		return s.pending, nil
	}
	if s.closed {
		return 0, ErrClosed
	}
	return 0, s.err
}

// ReadLine implements Port.
func (s *Stream) ReadLine() (string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	var expired bool
	if s.ReadTimeout > 0 {
		timer := time.AfterFunc(s.ReadTimeout, func() {
			s.lock.Lock()
			expired = true
			s.cond.Broadcast()
			s.lock.Unlock()
		})
		defer timer.Stop()
	}

	for len(s.lines) == 0 {
		switch {
		case s.closed:
			return "", ErrClosed
		case s.err != nil || expired:
			if s.parser.Pending() > 0 {
				line := s.parser.Flush()
				s.pending -= s.partial
				s.partial = 0
				if expired {
					return line, ErrTruncated
				}
				return line, nil
			}
			if s.err != nil {
				return "", s.err
			}
			return "", ErrTimeout
		}
		s.cond.Wait()
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	s.pending -= line.size
	return line.text, nil
}

// Write implements Port.
func (s *Stream) Write(p []byte) (int, error) {
	s.lock.Lock()
	closed := s.closed
	s.lock.Unlock()
	if closed {
		return 0, ErrClosed
	}
	return s.rw.Write(p)
}

// ResetInputBuffer implements Port.
func (s *Stream) ResetInputBuffer() error {
	s.lock.Lock()
	s.lines = nil
	s.pending, s.partial = 0, 0
	s.parser.Reset()
	s.lock.Unlock()
	if r, ok := s.rw.(interface{ ResetInputBuffer() error }); ok {
		return r.ResetInputBuffer()
	}
	return nil
}

// Close implements io.Closer, it waits for the read routine to exit.
func (s *Stream) Close() error {
	s.lock.Lock()
	if s.closed {
		s.lock.Unlock()
		return nil
	}
	s.closed = true
	s.cond.Broadcast()
	s.lock.Unlock()
	err := s.rw.Close()
	s.wg.Wait()
	return err
}

func (s *Stream) readRoutine() {
	buf := make([]byte, 256)
	for {
		n, err := s.rw.Read(buf)
		s.lock.Lock()
		if s.closed {
			s.lock.Unlock()
			return
		}
		for _, b := range buf[:n] {
			pr := s.parser.Parse(b)
			if pr.Skipped {
				continue
			}
			s.pending++
			s.partial++
			if pr.Complete {
				s.lines = append(s.lines, bufferedLine{text: pr.Line, size: s.partial})
				s.partial = 0
			}
		}
		if err != nil {
			if err != io.EOF {
				glog.Warningf("link read error: %v", err)
			}
			s.err = err
		}
		if n > 0 || err != nil {
			s.cond.Broadcast()
		}
		s.lock.Unlock()
		if err != nil {
			return
		}
	}
}
