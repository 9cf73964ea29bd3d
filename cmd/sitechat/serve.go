package main

import (
	"context"
	"fmt"
	"time"
)

// shutdownTimeout bounds graceful shutdown of the HTTP server.
const shutdownTimeout = 30 * time.Second

// Run executes the serve command. The server answers right away; questions
// fail with 503 until the background ingestion has finished.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ingestDone := make(chan struct{})
	go func() {
		defer close(ingestDone)
		if err := deps.Ingester.Run(deps.Ctx); err != nil {
			deps.Logger.Error("initial ingestion incomplete", "err", err)
		}
	}()

	if err := deps.Server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", deps.Server.URL())

	<-deps.Ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := deps.Server.Close(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	<-ingestDone
	return nil
}
