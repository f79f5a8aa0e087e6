package trinket

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"

	"github.com/robotalks/labtrinket/pkg/link"
)

// Config defines how to reach the board.
type Config struct {
	// Port is the serial device, empty auto-detects by VID. A ws:// or
	// wss:// URL dials a simulated board.
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
	VID  string `yaml:"vid"`
}

var defaultConfig = Config{
	Baud: link.DefaultBaudRate,
	VID:  link.AdafruitVID,
}

func init() {
	if port := os.Getenv("TRINKET_PORT"); port != "" {
		defaultConfig.Port = port
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Port, "port", defaultConfig.Port, "Serial port of the board, auto-detected when empty (env TRINKET_PORT).")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Serial baud rate.")
	flag.StringVar(&defaultConfig.VID, "vid", defaultConfig.VID, "USB vendor ID used for auto-detection.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates the default configuration.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Open opens the serial port and creates the Driver.
func (c *Config) Open() (*Driver, error) {
	name := c.Port
	if strings.HasPrefix(name, "ws://") || strings.HasPrefix(name, "wss://") {
		conn, err := link.DialWebsocket(name)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", name, err)
		}
		glog.Infof("board on %s", name)
		return New(conn), nil
	}
	if name == "" {
		found, err := link.FindSerial(c.VID)
		if err != nil {
			return nil, err
		}
		name = found
	}
	mode := link.DefaultMode()
	if c.Baud > 0 {
		mode.BaudRate = c.Baud
	}
	port, err := link.OpenSerial(name, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	glog.Infof("board on %s", name)
	return New(port), nil
}

// Open opens the board with the default config.
func Open() (*Driver, error) {
	return Default().Open()
}
