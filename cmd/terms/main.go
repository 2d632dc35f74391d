// Title: terms CLI Application Entry Point
// Purpose: Runs the terms command-line glossary, wiring interrupt signals
// into the context so a pending prompt can be abandoned.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nightconcept/terms/internal/cli/app"
)

// version is the application version, set at build time.
var version = "1.0.0" // Overridden with -ldflags "-X main.version=..."

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.New(version).RunContext(ctx, os.Args)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}
