package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dsmolenski/accountcli/internal/buildinfo"
	"github.com/dsmolenski/accountcli/internal/client/cli"
	"github.com/dsmolenski/accountcli/internal/client/config"
	"github.com/dsmolenski/accountcli/internal/logging"
)

func main() {

	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" {
			buildinfo.PrintBuildData(os.Stdout)
			return
		}
	}

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
