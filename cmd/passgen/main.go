package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/maybe-hello-world/passgen-embedded/cmd/passgen/bootstrap"
	"github.com/maybe-hello-world/passgen-embedded/cmd/passgen/run"
)

func main() {
	cfg, err := bootstrap.Config(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := bootstrap.Logging(cfg)
	if err != nil {
		panic(err)
	}
	log.Logger = logger

	// must have fully configured app
	app, err := bootstrap.App(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to configure application")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run.Print(ctx, app, os.Stdout); err != nil {
		log.Error().Err(err).Msg("Unable to print credentials")
		cancel()
		os.Exit(1)
	}
}
