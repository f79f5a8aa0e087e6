package comm

import "strings"

// LineKind is the category of a line received by the host.
type LineKind int

// Line kinds.
const (
	// Noise is anything that is neither echo nor a valid response,
	// e.g. a truncated line.
	Noise LineKind = iota
	// Echo is the board repeating a command line it received.
	Echo
	// Response is a correctly tagged value line.
	Response
)

// String implements Stringer.
func (k LineKind) String() string {
	switch k {
	case Echo:
		return "echo"
	case Response:
		return "response"
	}
	return "noise"
}

// Classification is the result of Classify.
type Classification struct {
	Kind  LineKind
	Value Value
}

// Classify sorts out a line read from the board.
func Classify(line string) Classification {
	line = strings.TrimSpace(line)
	if len(line) > 0 && line[0] == Sentinel {
		if v, err := ParseValue(line); err == nil {
			return Classification{Kind: Response, Value: v}
		}
		return Classification{Kind: Noise}
	}
	for _, kw := range []string{KeywordLED, KeywordADC, KeywordDAC} {
		if strings.HasPrefix(line, kw) {
			return Classification{Kind: Echo}
		}
	}
	return Classification{Kind: Noise}
}
