package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	cmd, err := newRootCommand(wiring).ExecuteContextC(ctx)
	if err != nil {
		label := "jotter"
		if cmd != nil {
			label = cmd.Name()
		}
		stop()
		exitOnErr(label, err, wiring.stderr)
	}
}
