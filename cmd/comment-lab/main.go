package main

import (
	"comment-lab/errors"
	"comment-lab/internal"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes to provide meaningful status to the calling shell or scheduler.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "comment-lab terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run loads the configuration, builds the command tree and executes it.
// Deferred cleanups (BadgerDB, Bluge) all run before the process exits.
func run(args []string) (int, error) {
	// 1. Configuration from .env and the environment, flags override it later
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}

	// 2. Command tree
	root := newRootCommand(&config)
	root.SetArgs(args)

	// 3. Context & Signals
	// NotifyContext cancels the context so a long training run stops on Ctrl+C.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Execution
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errConfig) {
			return exitConfig, err
		}
		return exitRuntime, err
	}
	return exitOK, nil
}
