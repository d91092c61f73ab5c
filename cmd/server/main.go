package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/backtest/engine"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/feed"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/logger"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/server"
)

const shutdownTimeout = 10 * time.Second

// serveAction loads the feed and serves the backtest API until interrupted.
func serveAction(ctx context.Context, cmd *cli.Command) error {
	dataPath := cmd.String("data")
	addr := cmd.String("addr")

	config := engine.DefaultConfig()

	if configPath := cmd.String("config"); configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		if err := yaml.Unmarshal(raw, &config); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	}

	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLogger.Sync()

	source, err := feed.NewDuckDBSource(appLogger)
	if err != nil {
		return err
	}
	defer source.Close()

	if err := source.Initialize(dataPath); err != nil {
		return err
	}

	observations, err := source.Load()
	if err != nil {
		return err
	}

	srv, err := server.NewServer(observations, config, appLogger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)

	go func() {
		serveErr <- srv.Start(addr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func main() {
	cmd := &cli.Command{
		Name:  "server",
		Usage: "Serve the backtest API over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "data",
				Aliases:  []string{"d"},
				Usage:    "Path to the indicator feed CSV",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "addr",
				Aliases:  []string{"a"},
				Usage:    "Listen address",
				Value:    ":5001",
				Required: false,
			},
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "Path to the engine config YAML",
				Required: false,
			},
		},
		Action: serveAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
