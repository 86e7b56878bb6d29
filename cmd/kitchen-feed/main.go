// kitchen-feed consumes shop events from the broker and prints kitchen
// tickets for new orders. Run it next to the till so the kitchen sees
// orders as they are punched in.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"dukaan/internal/cli"
	"dukaan/internal/events"
	applog "dukaan/internal/log"
)

func main() {
	logger, cfg := cli.Bootstrap(applog.ComponentKitchen)
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the kitchen feed")
		os.Exit(1)
	}

	client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to broker", applog.FieldError, err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Kitchen feed started", "queue", cfg.AMQPQueue)
	err = client.Consume(ctx, func(event *events.ShopEvent) error {
		switch event.Kind {
		case events.KindOrderCreated:
			fmt.Print(ticket(event))
		case events.KindOrderDeleted:
			fmt.Printf("\n*** CANCELLED order %s ***\n", event.ID)
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Consuming shop events failed", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Kitchen feed stopped")
}

func ticket(event *events.ShopEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n========== ORDER ==========\n")
	fmt.Fprintf(&b, "id:   %s\n", event.ID)
	fmt.Fprintf(&b, "time: %s\n", event.Timestamp.Format("2006-01-02 15:04:05"))
	for _, l := range event.Lines {
		fmt.Fprintf(&b, "  %dx %s\n", l.Quantity, l.Name)
	}
	fmt.Fprintf(&b, "total: %.2f\n", event.Total)
	fmt.Fprintf(&b, "===========================\n")
	return b.String()
}
