package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"linestats-api-server/cmd/api-server/app"
	"linestats-api-server/cmd/api-server/app/options"
	_ "linestats-api-server/docs"
	log "linestats-api-server/internal/logger"
)

func main() {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	option, err := options.NewOptions()
	if err != nil {
		fmt.Print(option.Usage(err))
		os.Exit(1)
	}

	logger, err := log.SetupLogger(*option.LogFile, *option.Mode)
	if err != nil {
		os.Exit(1)
	}

	if err := app.Run(option, logger); err != nil {
		os.Exit(1)
	}
}
