package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ayankousky/interest-calculator/internal/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewBuilder().
		WithOptionsFetch().
		WithLogger().
		WithTelemetry().
		WithCalculator(ctx).
		WithNotifiers(ctx).
		WithServer().
		Build()
	if err != nil {
		fmt.Printf("Error building application: %v\n", err)
		os.Exit(1)
	}

	if err := app.Start(ctx); err != nil {
		fmt.Printf("Application stopped with error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Exiting...")
}
