package main

import (
	"math/rand/v2"
	"time"

	"github.com/tomz197/asteriods/internal/asset"
	"github.com/tomz197/asteriods/internal/host/window"
	"github.com/tomz197/asteriods/internal/logging"
	"github.com/tomz197/asteriods/internal/loop"
	"github.com/tomz197/asteriods/internal/loop/config"
)

func main() {
	logger := logging.New("info")

	reg, err := asset.NewRegistry(window.TextureLoader{Files: asset.FileLoader{}}, config.AssetDir)
	if err != nil {
		logger.Fatal("failed to load assets", "err", err)
	}

	seed := uint64(time.Now().UnixNano())
	state := loop.NewState(reg, rand.New(rand.NewPCG(seed, seed)))

	if err := window.Run(loop.NewDriver(state)); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
