package main

import (
	"context"
	"os"

	"github.com/recipesearch/recipesearch/internal/logging"
	"github.com/recipesearch/recipesearch/internal/server"
	"github.com/recipesearch/recipesearch/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}

}
