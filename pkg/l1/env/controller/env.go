// Package controller sets up the registry environment of an L1
// controller: its identity and the registrars it is reachable through.
package controller

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	fx "github.com/robotalks/labtrinket/pkg/framework"
	"github.com/robotalks/labtrinket/pkg/l1"
	"github.com/robotalks/labtrinket/pkg/l1/comm"
	"github.com/robotalks/labtrinket/pkg/l1/comm/mqtt"
	"github.com/robotalks/labtrinket/pkg/l1/comm/stream"
	"github.com/robotalks/labtrinket/pkg/l1/env"
)

// Config provides common options to setup an env for L1 controllers.
type Config struct {
	Info l1.ControllerInfo `yaml:",inline"`

	// MQTTBrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string `yaml:"mqtt"`
	// Stdio serves one L2 program on stdin/stdout with length-prefixed
	// packets.
	Stdio bool `yaml:"stdio"`
}

var defaultConfig = Config{
	MQTTBrokerURL: "mqtt://localhost:1883/lab/",
}

func init() {
	if val := os.Getenv("TRINKET_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	defaultConfig.Info.Ref.ID = env.MachineID()
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Info.Ref.ID, "id", defaultConfig.Info.Ref.ID, "Controller ID, defaults to the machine ID")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL, empty disables MQTT (env TRINKET_MQTT_URL)")
	flag.BoolVar(&defaultConfig.Stdio, "stdio", defaultConfig.Stdio, "Serve an L2 program on stdin/stdout")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// SetControllerType should be called in init with basic info about the controller.
func SetControllerType(typ string, meta l1.ControllerMeta) {
	defaultConfig.Info.Ref.Type = typ
	defaultConfig.Info.Meta = meta
}

// Env is the env for L1 controllers.
type Env struct {
	Config       *Config
	RegistryURLs []string
	Registrar    *comm.RegistrarMux
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

type stdio struct {
	io.Reader
	io.Writer
}

// NewEnv creates Env from config.
func (c *Config) NewEnv() (*Env, error) {
	if !c.Info.Ref.IsValid() {
		return nil, fmt.Errorf("controller type and id must be specified")
	}
	e := &Env{
		Config:    c,
		Registrar: &comm.RegistrarMux{},
	}
	if c.MQTTBrokerURL != "" {
		reg, err := mqtt.NewRegistrar(c.MQTTBrokerURL, c.Info)
		if err != nil {
			return nil, fmt.Errorf("create MQTT registrar error: %w", err)
		}
		e.Registrar.Add(reg)
		e.RegistryURLs = append(e.RegistryURLs, c.MQTTBrokerURL)
	}
	if c.Stdio {
		e.Registrar.Add(NewStreamRegistrar(stdio{Reader: os.Stdin, Writer: os.Stdout}))
		e.RegistryURLs = append(e.RegistryURLs, "stdio:")
	}
	if len(e.Registrar.Registrars) == 0 {
		return nil, fmt.Errorf("at least one registrar is required")
	}
	return e, nil
}

// MustNewEnv creates Env and fails on error.
func (c *Config) MustNewEnv() *Env {
	e, err := c.NewEnv()
	if err != nil {
		log.Fatalln(err)
	}
	return e
}

// NewStreamRegistrar creates a registrar serving one peer on a byte
// stream.
func NewStreamRegistrar(rw io.ReadWriter) *comm.Registrar {
	reg := &comm.Registrar{}
	reg.Init(stream.New(rw))
	return reg
}

// AddToLoop adds controllers/runners to loop.
func (e *Env) AddToLoop(loop *fx.Loop) {
	loop.Add(e.Registrar)
	loop.Add(&comm.UnsupportedCommands{})
}
