package main

import (
	"context"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/tomz197/asteriods/internal/asset"
	"github.com/tomz197/asteriods/internal/config"
	"github.com/tomz197/asteriods/internal/logging"
	"github.com/tomz197/asteriods/internal/loop"
	gameconfig "github.com/tomz197/asteriods/internal/loop/config"
)

func main() {
	logger := logging.New(config.GetEnv("ASTERIODS_LOG_LEVEL", "info"))
	assetDir := config.GetEnv("ASTERIODS_ASSETS", gameconfig.AssetDir)

	reg, err := asset.NewRegistry(asset.FileLoader{}, assetDir)
	if err != nil {
		logger.Fatal("failed to load assets", "dir", assetDir, "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	seed := uint64(time.Now().UnixNano())
	d := loop.NewDriver(loop.NewState(reg, rand.New(rand.NewPCG(seed, seed))))

	err = loop.RunTerminal(ctx, os.Stdin, os.Stdout, d, loop.TerminalOptions{})
	stop()
	_ = term.Restore(fd, oldState)
	if err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
