package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"

	fx "github.com/robotalks/labtrinket/pkg/framework"
	"github.com/robotalks/labtrinket/pkg/l1/bridge"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", configFile, "YAML config file, flags on the command line override it.")
	bridge.SetupFlags()
}

// loadConfig applies the config file beneath the flags set explicitly.
func loadConfig(conf *bridge.Config) error {
	if configFile == "" {
		return nil
	}
	set := make(map[string]string)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
	if err := conf.Load(configFile); err != nil {
		return err
	}
	for name, val := range set {
		if err := flag.Set(name, val); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	flag.Parse()

	conf := bridge.Default()
	if err := loadConfig(conf); err != nil {
		log.Fatalln(err)
	}
	env := conf.Controller.MustNewEnv()
	drv, err := conf.Board.Open()
	if err != nil {
		log.Fatalln(err)
	}
	defer drv.Close()

	loop := fx.NewLoop()
	loop.Interval = conf.Interval
	loop.Add(env, conf.NewBridge(env.Registrar, drv))
	if err := fx.NewRunner().HandleSignals().Go(loop).Wait(); err != nil {
		log.Println(err)
	}
}
