package bridge

import (
	"flag"
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/robotalks/labtrinket/pkg/l1"
	env "github.com/robotalks/labtrinket/pkg/l1/env/controller"
	"github.com/robotalks/labtrinket/pkg/l1/trinket"
)

// ControllerType is the registered controller type.
const ControllerType = "trinket"

// DefaultInterval is the loop period, it bounds sample latency.
const DefaultInterval = 20 * time.Millisecond

// Config gathers the controller identity, the board and the loop
// settings. The YAML file mirrors the structure:
//
//	controller:
//	  id: bench-1
//	  mqtt: mqtt://localhost:1883/lab/
//	board:
//	  port: /dev/ttyACM0
//	interval: 20ms
type Config struct {
	Controller *env.Config     `yaml:"controller"`
	Board      *trinket.Config `yaml:"board"`
	Interval   time.Duration   `yaml:"interval"`
	// Tries is the line budget of each sample drain.
	Tries int `yaml:"tries"`
}

var defaultConfig = Config{
	Controller: env.Default(),
	Board:      trinket.Default(),
	Interval:   DefaultInterval,
	Tries:      trinket.DefaultTries,
}

func init() {
	env.SetControllerType(ControllerType, l1.ControllerMeta{
		Description: "LabTrinket board bridge",
	})
}

// SetupFlags sets command line flags, including those of the
// controller env and the board.
func SetupFlags() {
	env.SetupFlags()
	trinket.SetupFlags()
	flag.DurationVar(&defaultConfig.Interval, "interval", defaultConfig.Interval, "Bridge loop interval.")
	flag.IntVar(&defaultConfig.Tries, "tries", defaultConfig.Tries, "Lines read per sample drain.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	ctl, board := *defaultConfig.Controller, *defaultConfig.Board
	conf.Controller, conf.Board = &ctl, &board
	return &conf
}

// Load overlays the YAML file at path, keys absent from the file keep
// their current values.
func (c *Config) Load(path string) error {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not open config file: %w", err)
	}
	if err := yaml.UnmarshalStrict(content, c); err != nil {
		return fmt.Errorf("could not parse config file: %w", err)
	}
	return nil
}

// NewBridge creates the bridge on an opened driver.
func (c *Config) NewBridge(reg l1.Registrar, drv *trinket.Driver) *Bridge {
	b := New(reg, drv)
	if c.Tries > 0 {
		b.Tries = c.Tries
	}
	return b
}
