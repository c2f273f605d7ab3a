package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fekuna/omnipos-local-store/config"
	"github.com/fekuna/omnipos-local-store/internal/cli"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	root := cli.NewRootCommand(cfg, appLogger)
	if err := root.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, cli.ErrOperationFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		_ = appLogger.Sync()
		os.Exit(1)
	}
}
