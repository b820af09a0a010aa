package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"rte-collector/internal/config"
	"rte-collector/internal/export"
	"rte-collector/internal/interval"
	"rte-collector/internal/models"
)

// ForecastAPI is the slice of the RTE client the collector needs. Keeping it
// narrow lets the pipeline run against a fake in tests.
type ForecastAPI interface {
	AcquireToken() (string, error)
	GetForecasts(token string, start, end time.Time, productionType, forecastType string) ([]models.Forecast, error)
}

// MaxSpan is the longest range the RTE forecast endpoint accepts per request.
const MaxSpan = 15 * 24 * time.Hour

const forecastType = "CURRENT"

type target struct {
	BaseName       string
	ProductionType string
}

var targets = []target{
	{"electricity_generation_wind", "WIND_ONSHORE"},
	{"electricity_generation_solar", "SOLAR"},
}

// FetchRange fetches [start, end) in DST-corrected chunks of at most MaxSpan,
// one request per chunk, and concatenates the results in chunk order. The
// first failing chunk aborts the whole range: no partial results, no retry.
func FetchRange(api ForecastAPI, token string, start, end time.Time, productionType string, loc *time.Location) ([]models.Forecast, error) {
	var all []models.Forecast
	for _, chunk := range interval.Chunks(start, end, MaxSpan, loc) {
		forecasts, err := api.GetForecasts(token, chunk.Start, chunk.End, productionType, forecastType)
		if err != nil {
			return nil, err
		}
		all = append(all, forecasts...)
	}
	return all, nil
}

// CollectorStats tracks pipeline runs for the status API.
type CollectorStats struct {
	Runs        int64
	Failures    int64
	RowsWritten int64
	LastRun     time.Time
	LastError   string
	LastFiles   []string
}

// Collector runs the full pipeline (token -> chunked fetch -> CSV snapshot,
// once per production type) immediately and then on a fixed interval.
type Collector struct {
	cfg     *config.Config
	api     ForecastAPI
	loc     *time.Location
	start   time.Time
	end     time.Time
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.RWMutex
	running bool
	stats   CollectorStats
}

func NewCollector(cfg *config.Config, api ForecastAPI) (*Collector, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	start, err := time.Parse(time.RFC3339, cfg.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_START_DATE %q: %w", cfg.StartDate, err)
	}
	end, err := time.Parse(time.RFC3339, cfg.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_END_DATE %q: %w", cfg.EndDate, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Collector{
		cfg:    cfg,
		api:    api,
		loc:    loc,
		start:  start,
		end:    end,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// RunOnce executes one pipeline pass: fresh token, then fetch and snapshot
// for each production type. The first error aborts the pass; any target not
// yet written produces no file.
func (c *Collector) RunOnce() error {
	started := time.Now().In(c.loc)
	log.Printf("[Collector] Run started at %s", started.Format(time.RFC3339))

	err := c.runPipeline()

	c.mu.Lock()
	c.stats.Runs++
	c.stats.LastRun = started
	if err != nil {
		c.stats.Failures++
		c.stats.LastError = err.Error()
	} else {
		c.stats.LastError = ""
	}
	c.mu.Unlock()

	if err != nil {
		return err
	}
	log.Println("[Collector] Run completed")
	return nil
}

func (c *Collector) runPipeline() error {
	token, err := c.api.AcquireToken()
	if err != nil {
		return err
	}

	// Fetch every target before writing anything: a fetch failure mid-run
	// abandons the whole pass, leaving no file for either production type.
	fetched := make([][]models.Forecast, len(targets))
	for i, t := range targets {
		forecasts, err := FetchRange(c.api, token, c.start, c.end, t.ProductionType, c.loc)
		if err != nil {
			return err
		}
		fetched[i] = forecasts
	}

	var files []string
	var rows int64
	for i, t := range targets {
		path, err := export.WriteSnapshot(fetched[i], t.BaseName, c.loc)
		if err != nil {
			return err
		}
		log.Printf("[Collector] Saved %s", path)
		files = append(files, path)
		for _, f := range fetched[i] {
			rows += int64(len(f.Values))
		}
	}

	c.mu.Lock()
	c.stats.RowsWritten += rows
	c.stats.LastFiles = files
	c.mu.Unlock()
	return nil
}

// Start runs one pass immediately, then repeats on the configured interval.
// A failed pass is logged and the loop keeps waiting for the next tick.
func (c *Collector) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.mu.Unlock()

	log.Printf("[Collector] Started (every %s)", c.cfg.Interval)

	c.wg.Add(1)
	go c.loop()
}

func (c *Collector) loop() {
	defer c.wg.Done()

	if err := c.RunOnce(); err != nil {
		log.Printf("[Collector] Run failed: %v", err)
	}

	ticker := time.NewTicker(c.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			if err := c.RunOnce(); err != nil {
				log.Printf("[Collector] Run failed: %v", err)
			}
		}
	}
}

// Stop cancels the loop and waits for an in-flight pass to return.
func (c *Collector) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
	log.Println("[Collector] Stopped")
}

// Stats returns a copy of the current counters.
func (c *Collector) Stats() CollectorStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stats := c.stats
	stats.LastFiles = append([]string(nil), c.stats.LastFiles...)
	return stats
}
