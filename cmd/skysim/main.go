// Package main is the entry point for the headless sky simulator.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/arena-sky/internal/config"
	"github.com/Faultbox/arena-sky/internal/game"
	"github.com/Faultbox/arena-sky/internal/logger"
)

func main() {
	// Parse CLI flags first
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Arena Sky Simulator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create simulator", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx); err != nil {
		logger.Error("simulator error", zap.Error(err))
		os.Exit(1)
	}

	if s := g.Sky(); s != nil {
		logger.Info("final sky", zap.String("digest", s.Digest()))
	}
	logger.Info("simulator closed normally")
}
