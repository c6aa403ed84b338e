package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/igget/ig2mp3/internal/cli"
	"github.com/igget/ig2mp3/internal/exitcode"
	"github.com/igget/ig2mp3/internal/platform"
)

// EnvForceExit forces a real non-zero exit even on an interactive
// terminal when set to "1".
const EnvForceExit = "FORCE_SYS_EXIT"

func main() {
	// Optional per-directory environment (IG_LINKS, FORCE_SYS_EXIT).
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rc := cli.Execute(ctx)

	force := os.Getenv(EnvForceExit) == "1"
	var decision exitcode.Decision
	if rc == exitcode.CodeInterrupted {
		// An interrupt is already printed by the run; it never forces
		// a non-zero exit on its own.
		decision = exitcode.DecideInterrupted(force)
	} else {
		decision = exitcode.Decide(rc, platform.StdoutIsInteractive(), force)
	}
	if decision.Terminate && decision.Code != 0 {
		os.Exit(decision.Code)
	}
	// Otherwise end silently with the implicit zero status.
}
