// The console binary is a terminal stand-in for the administration UI: it
// logs in, loads the full read model and keeps the unassigned-order badge
// fresh until interrupted.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dispatch/cmd"
	"dispatch/internal/console"

	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConsoleConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := context.Background()

	client := console.NewClient(config.APIBaseURL)
	if err = client.Login(ctx, config.AdminUsername, config.AdminPassword); err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	model := console.NewReadModel(client)
	if err = model.Refresh(ctx); err != nil {
		log.Fatalf("Initial refresh failed: %v", err)
	}
	logger.InfoContext(ctx, "Read model loaded",
		"orders", len(model.Orders()),
		"deliveryPersons", len(model.DeliveryPersons()),
		"assignments", len(model.Assignments()),
	)

	poller := console.NewBadgePoller(client, config.BadgePollInterval, logger)
	if err = poller.Start(); err != nil {
		log.Fatalf("Badge poller failed to start: %v", err)
	}
	defer poller.Stop()
	logger.InfoContext(ctx, "Unassigned orders", "count", poller.Count())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
}
