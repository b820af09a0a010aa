package main

import (
	"flag"
	"log"

	"rte-collector/internal/config"
	"rte-collector/internal/services"
	"rte-collector/internal/services/rte"

	"github.com/joho/godotenv"
)

var (
	startDate = flag.String("start", "", "range start, RFC 3339 (overrides FETCH_START_DATE)")
	endDate   = flag.String("end", "", "range end, RFC 3339 (overrides FETCH_END_DATE)")
)

// fetch-once runs a single pipeline pass and exits. Unlike the daemon it
// exits non-zero when the pass fails, which makes it usable from cron or CI.
func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	if *startDate != "" {
		cfg.StartDate = *startDate
	}
	if *endDate != "" {
		cfg.EndDate = *endDate
	}

	client := rte.NewClient(cfg.ClientID, cfg.ClientSecret, cfg.TokenURL, cfg.DataURL)
	collector, err := services.NewCollector(cfg, client)
	if err != nil {
		log.Fatal("Failed to create collector: ", err)
	}

	if err := collector.RunOnce(); err != nil {
		log.Fatal("Run failed: ", err)
	}
}
