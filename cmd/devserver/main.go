// devserver runs a local stand-in for the hosted auth, admin and chat
// functions so the client can be exercised without the real deployment.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/setka-dev/setka/internal/devserver"
	"github.com/setka-dev/setka/internal/logging"
)

func main() {
	cfg := devserver.LoadConfig()
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := devserver.New(cfg, log).Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "devserver:", err)
		os.Exit(1)
	}
}
