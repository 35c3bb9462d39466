package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/app"
	"github.com/pdrpinto/gridastar/internal/cli"
	"github.com/pdrpinto/gridastar/internal/ctxlog"
)

// main is the entrypoint for the gridastar command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	ctx = ctxlog.WithLogger(ctx, slog.Default())
	appConfig, shouldExit, err := cli.Parse(ctx, args, outW, logW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	solver := app.NewApp(outW, logW, appConfig)
	if _, err := solver.Run(ctx); err != nil {
		if errors.Is(err, astar.ErrNoPath) {
			return &cli.ExitError{Code: 1, Message: err.Error()}
		}
		return err
	}
	return nil
}
