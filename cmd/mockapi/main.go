package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-colten/internal/config"
	"github.com/jrsteele09/go-colten/internal/logging"
	"github.com/jrsteele09/go-colten/server"
	"github.com/jrsteele09/go-colten/server/propertyrepo"
	fakeuserrepo "github.com/jrsteele09/go-colten/users/repofake"
)

func main() {
	cfgFile := flag.String("config", "", "config file (default is $HOME/.colten.yml)")
	flag.Parse()

	for attempt := 1; ; attempt++ {
		err := run(*cfgFile)
		if err == nil {
			break
		}
		log.Error().Err(err).Int("attempt", attempt).Msg("mock API stopped with an error")
		if attempt >= 3 {
			os.Exit(1)
		}
		time.Sleep(1 * time.Second)
	}
	log.Info().Msg("mock API stopped")
}

func run(cfgFile string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	v, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	c := config.New(v)
	logging.Setup(c.GetLogLevel(), c.GetEnv())
	displayAppname(c.GetAppName() + " API")

	handler, err := server.New(c, fakeuserrepo.NewFakeAccountRepo(), propertyrepo.NewInMemoryRepo())
	if err != nil {
		return errors.Wrap(err, "server.New")
	}
	srv := &http.Server{
		Addr:              c.GetPort(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() { errs <- listenAndServe(srv) }()

	select {
	case err := <-errs:
		return err
	case <-waitForStopSignal():
	}
	return shutdown(srv)
}

func listenAndServe(server *http.Server) error {
	log.Info().Str("addr", server.Addr).Msg("mock API listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server.ListenAndServe")
	}
	return nil
}

func waitForStopSignal() <-chan os.Signal {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	return stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server.Shutdown")
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
