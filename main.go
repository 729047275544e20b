package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"settlement/cmd"
	"settlement/internal/config"
	"settlement/internal/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load configuration, using defaults: %v", err)
		cfg = config.Default()
	}

	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	log := logger.WithComponent("main")
	log.Debug().Msg("Starting Settlement CLI")

	cmd.Execute(cfg)

	log.Debug().Msg("Settlement CLI shutdown")
	os.Exit(0)
}
