package link

import (
	"strings"
	"time"

	"github.com/golang/glog"
	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// AdafruitVID is the USB vendor ID of the board.
const AdafruitVID = "239A"

// DefaultBaudRate of the board's USB CDC port.
const DefaultBaudRate = 9600

// serialPollTimeout bounds each blocking read so Close is noticed.
const serialPollTimeout = 100 * time.Millisecond

// DefaultMode returns the serial settings used by the board.
func DefaultMode() *serial.Mode {
	return &serial.Mode{
		BaudRate: DefaultBaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}

// OpenSerial opens the named serial port, nil mode selects DefaultMode.
func OpenSerial(name string, mode *serial.Mode) (*Stream, error) {
	if mode == nil {
		mode = DefaultMode()
	}
	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, err
	}
	if err := port.SetReadTimeout(serialPollTimeout); err != nil {
		port.Close()
		return nil, err
	}
	glog.V(1).Infof("serial %s opened at %d baud", name, mode.BaudRate)
	return NewStream(port), nil
}

// FindSerial returns the first USB serial port with the vendor ID,
// falling back to the first USB serial port.
func FindSerial(vid string) (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", err
	}
	var fallback string
	for _, p := range ports {
		if !p.IsUSB {
			continue
		}
		glog.V(2).Infof("serial %s: VID %s PID %s %s", p.Name, p.VID, p.PID, p.Product)
		if strings.EqualFold(p.VID, vid) {
			return p.Name, nil
		}
		if fallback == "" {
			fallback = p.Name
		}
	}
	if fallback == "" {
		return "", ErrNoPortFound
	}
	glog.Warningf("no port with VID %s, using %s", vid, fallback)
	return fallback, nil
}
