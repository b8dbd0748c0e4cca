// Command landedcost estimates vehicle import duties and landed cost for
// Namibia, South Africa, Botswana and Zambia, and can serve the calculator
// over gRPC.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "[landedcost] Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
