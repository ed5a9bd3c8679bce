package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/pterm/pterm"
	"golang.org/x/term"
	"ztask/cmd"
)

func main() {
	if runtime.GOOS != "linux" {
		log.Fatal("ztask is only supported on Linux")
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableColor()
	}

	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := cmd.Cli()
	if err := cli.RunContext(ctx, os.Args); err != nil {
		slog.Error(err.Error())
		stop()
		os.Exit(cmd.ExitCode(err))
	}
}
