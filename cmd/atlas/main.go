// Command atlas runs the world-generation pipeline: mesh and terrain
// construction from a heightmap, climate simulation, hydrology, biome
// classification, habitability scoring, and culture expansion, each
// stage invocable as its own subcommand over a persisted project file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/worldforge/atlas/pkg/pipeline"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(pipeline.ExitCode(err))
	}
}
