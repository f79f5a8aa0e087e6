package link

import "io"

type pipeEnd struct {
	*io.PipeReader
	*io.PipeWriter
}

func (e *pipeEnd) Close() error {
	e.PipeWriter.Close()
	return e.PipeReader.Close()
}

// Pipe returns two connected in-memory ports, bytes written to one are
// received by the other.
func Pipe() (*Stream, *Stream) {
	ar, bw := io.Pipe()
	br, aw := io.Pipe()
	return NewStream(&pipeEnd{PipeReader: ar, PipeWriter: aw}),
		NewStream(&pipeEnd{PipeReader: br, PipeWriter: bw})
}
