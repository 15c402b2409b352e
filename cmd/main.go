package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/anchorkit/idlgen/internal/cmd"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	wd, err := os.Getwd()
	if err != nil {
		logger.Fatal("failed to determine working directory", zap.Error(err))
	}

	err = cmd.Run(cmd.Settings{
		WorkingDir: wd,
		Logger:     logger,
	})

	if err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
}
