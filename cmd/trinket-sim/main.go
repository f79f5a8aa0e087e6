package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/labtrinket/pkg/framework"
	"github.com/robotalks/labtrinket/pkg/l0/firmware"
	"github.com/robotalks/labtrinket/pkg/link"
	"github.com/robotalks/labtrinket/pkg/sim"
)

var (
	listenAddr = ":8080"
	devName    string
)

func init() {
	flag.StringVar(&listenAddr, "listen", listenAddr, "Serve the board at ws://<addr>/ when -dev is not set.")
	flag.StringVar(&devName, "dev", devName, "Serial device to serve the board on, e.g. one end of a virtual null-modem.")
	sim.SetupFlags()
}

// boardServer runs the firmware for one host at a time, each
// connection boots the board afresh.
type boardServer struct {
	board *sim.Board
	busy  chan struct{}
	ctx   context.Context
}

func (s *boardServer) newLoop(port link.Port) *firmware.Loop {
	return firmware.NewLoop(firmware.Board{
		In:    s.board.In,
		Out:   s.board.Out,
		Pixel: s.board.Pixel,
		Clock: s.board.Clock,
	}, port)
}

func (s *boardServer) serve(stream *link.Stream) {
	select {
	case s.busy <- struct{}{}:
	default:
		glog.Warning("board busy, connection refused")
		return
	}
	defer func() { <-s.busy }()
	glog.Info("host connected")
	if err := s.newLoop(stream).Run(s.ctx); err != nil && !errors.Is(err, context.Canceled) {
		glog.Warningf("firmware loop: %v", err)
	}
	glog.Info("host disconnected")
}

type httpServer struct {
	*http.Server
}

func (s *httpServer) Run(ctx context.Context) error {
	err := fx.RunWithContextCloser(ctx, s.Server, s.ListenAndServe)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func main() {
	flag.Parse()

	board := sim.NewBoard(sim.WallClock{})
	src, err := sim.Default().Source(time.Now())
	if err != nil {
		log.Fatalln(err)
	}
	board.In.Source = src

	runner := fx.NewRunner().HandleSignals()
	srv := &boardServer{board: board, busy: make(chan struct{}, 1), ctx: runner.Context}
	if devName != "" {
		port, err := link.OpenSerial(devName, nil)
		if err != nil {
			log.Fatalln(err)
		}
		runner.Go(srv.newLoop(port))
	} else {
		glog.Infof("serving board on ws://%s/", listenAddr)
		runner.Go(&httpServer{Server: &http.Server{
			Addr:    listenAddr,
			Handler: link.WebsocketHandler(srv.serve),
		}})
	}
	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}
