package link

import (
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitBuffered(t *testing.T, p Port, n int) {
	require.Eventually(t, func() bool {
		count, err := p.Buffered()
		return err == nil && count == n
	}, time.Second, time.Millisecond)
}

func TestPipeLines(t *testing.T) {
	a, b := Pipe()
	defer a.Close()
	defer b.Close()

	n, err := b.Buffered()
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = a.Write([]byte("adc!\r>i2048\r\n"))
	require.NoError(t, err)
	waitBuffered(t, b, 13)

	line, err := b.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "adc!", line)
	n, err = b.Buffered()
	require.NoError(t, err)
	require.Equal(t, 8, n)

	line, err = b.ReadLine()
	require.NoError(t, err)
	require.Equal(t, ">i2048", line)
	// the LF of CRLF is not counted
	n, err = b.Buffered()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestReadLineTimeout(t *testing.T) {
	a, b := Pipe()
	defer a.Close()
	defer b.Close()
	b.ReadTimeout = 20 * time.Millisecond

	_, err := b.ReadLine()
	require.True(t, os.IsTimeout(err))

	_, err = a.Write([]byte("junk"))
	require.NoError(t, err)
	waitBuffered(t, b, 4)
	line, err := b.ReadLine()
	require.Equal(t, ErrTruncated, err)
	require.True(t, os.IsTimeout(err))
	require.Equal(t, "junk", line)
	waitBuffered(t, b, 0)
}

func TestResetInputBuffer(t *testing.T) {
	a, b := Pipe()
	defer a.Close()
	defer b.Close()

	_, err := a.Write([]byte("led#FF0000\rpart"))
	require.NoError(t, err)
	waitBuffered(t, b, 15)
	require.NoError(t, b.ResetInputBuffer())
	waitBuffered(t, b, 0)

	_, err = a.Write([]byte("ial\rdac@on\r"))
	require.NoError(t, err)
	line, err := b.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "ial", line)
	line, err = b.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "dac@on", line)
}

func TestClose(t *testing.T) {
	a, b := Pipe()
	done := make(chan error, 1)
	go func() {
		_, err := a.ReadLine()
		done <- err
	}()
	require.NoError(t, a.Close())
	select {
	case err := <-done:
		require.Equal(t, ErrClosed, err)
	case <-time.After(time.Second):
		t.Fatal("ReadLine not unblocked")
	}
	_, err := a.Write([]byte("x"))
	require.Equal(t, ErrClosed, err)
	_, err = a.Buffered()
	require.Equal(t, ErrClosed, err)

	// peer observes the end of stream
	_, err = b.ReadLine()
	require.Error(t, err)
	b.Close()
}

func TestWebsocket(t *testing.T) {
	srv := httptest.NewServer(WebsocketHandler(func(s *Stream) {
		for {
			line, err := s.ReadLine()
			if err != nil {
				return
			}
			if _, err := s.Write([]byte(">" + line + "\r")); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	s, err := DialWebsocket("ws://" + strings.TrimPrefix(srv.URL, "http://"))
	require.NoError(t, err)
	defer s.Close()
	s.ReadTimeout = time.Second

	_, err = s.Write([]byte("adc!\r"))
	require.NoError(t, err)
	line, err := s.ReadLine()
	require.NoError(t, err)
	require.Equal(t, ">adc!", line)
}
