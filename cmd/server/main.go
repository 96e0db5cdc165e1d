// Command server runs the lexibridge HTTP API.
//
// Configuration is read from the YAML file named by CONFIG_PATH (falling back
// to ./config.yaml) and from the environment. Exit codes: 0 = clean shutdown,
// 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/lexibridge/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("server failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
