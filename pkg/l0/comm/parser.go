package comm

// MaxLineLength bounds a line, longer input is split.
const MaxLineLength = 1024

// LineParser splits a byte stream into lines. CR, LF and CRLF are all
// accepted as terminator.
type LineParser struct {
	state parseState
	buf   []byte
}

// ParseResult indicates the result after one parsing step.
type ParseResult struct {
	// Line is valid when Complete is set, it excludes the terminator.
	Line     string
	Complete bool
	// Skipped is set when the byte is the LF of a CRLF pair and
	// doesn't belong to any line.
	Skipped bool
}

type parseState int

const (
	stateText    parseState = iota // accumulating text
	stateAfterCR                   // CR seen, LF would be swallowed
)

const (
	cr byte = '\r'
	lf byte = '\n'
)

// Parse consumes one byte.
func (p *LineParser) Parse(b byte) (pr ParseResult) {
	if p.state == stateAfterCR {
		p.state = stateText
		if b == lf {
			pr.Skipped = true
			return
		}
	}
	switch b {
	case cr:
		p.state = stateAfterCR
		return p.lineReady()
	case lf:
		return p.lineReady()
	}
	p.buf = append(p.buf, b)
	if len(p.buf) >= MaxLineLength {
		return p.lineReady()
	}
	return
}

// Pending returns the number of bytes of the incomplete line.
func (p *LineParser) Pending() int {
	return len(p.buf)
}

// Flush returns the incomplete line and clears it.
func (p *LineParser) Flush() string {
	s := string(p.buf)
	p.buf = p.buf[:0]
	return s
}

// Reset drops any incomplete line.
func (p *LineParser) Reset() {
	p.buf = p.buf[:0]
	p.state = stateText
}

func (p *LineParser) lineReady() ParseResult {
	return ParseResult{Line: p.Flush(), Complete: true}
}
