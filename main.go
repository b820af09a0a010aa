package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"rte-collector/internal/api"
	"rte-collector/internal/config"
	"rte-collector/internal/services"
	"rte-collector/internal/services/rte"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration; missing credentials abort before any work.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	client := rte.NewClient(cfg.ClientID, cfg.ClientSecret, cfg.TokenURL, cfg.DataURL)

	collector, err := services.NewCollector(cfg, client)
	if err != nil {
		log.Fatal("Failed to create collector: ", err)
	}

	log.Println("RTE forecast collector initialized")
	log.Printf("Fetch window: %s -> %s (%s)", cfg.StartDate, cfg.EndDate, cfg.Timezone)

	collector.Start()

	// Status API (read-only; forecast data is published as files only)
	r := gin.Default()
	api.SetupRoutes(r, cfg, collector)

	go func() {
		if err := r.Run(":" + cfg.Port); err != nil {
			log.Fatal("Status server failed: ", err)
		}
	}()

	// Wait for interrupt signal
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	log.Println("Collector is running. Press Ctrl+C to stop...")
	<-c

	log.Println("Shutting down collector...")
	collector.Stop()
}
