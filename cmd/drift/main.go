// cmd/drift/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"go-particle-drift/internal/app"
	"go-particle-drift/internal/config"
	"go-particle-drift/internal/screen"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	sim, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%d particles, %s boundary, %s source, %d workers",
		sim.System.Len(), cfg.Boundary, cfg.Source, sim.System.Workers())

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if _, err := sim.RunHeadless(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
		return
	}

	if err := screen.Run(sim); err != nil {
		log.Fatal(err)
	}
}
