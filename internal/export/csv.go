package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"rte-collector/internal/models"
)

// Flatten turns every forecast value into one output record carrying its
// parent forecast's production and forecast type.
func Flatten(forecasts []models.Forecast) []models.Record {
	var records []models.Record
	for _, f := range forecasts {
		for _, v := range f.Values {
			records = append(records, models.Record{
				StartDate:       v.StartDate,
				EndDate:         v.EndDate,
				ProductionType:  f.ProductionType,
				ForecastType:    f.Type,
				GenerationValue: v.Value,
			})
		}
	}
	return records
}

// SortRecords orders records chronologically by start date. The sort is
// stable, so values sharing an instant keep their API order. Dates that fail
// to parse fall back to string comparison.
func SortRecords(records []models.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return recordBefore(records[i], records[j])
	})
}

func recordBefore(a, b models.Record) bool {
	ta, errA := time.Parse(time.RFC3339, a.StartDate)
	tb, errB := time.Parse(time.RFC3339, b.StartDate)
	if errA != nil || errB != nil {
		return a.StartDate < b.StartDate
	}
	return ta.Before(tb)
}

// SnapshotName builds the timestamped snapshot filename. The timestamp makes
// successive runs non-destructive: no run overwrites an earlier snapshot.
func SnapshotName(baseName string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", baseName, now.Format("20060102_150405"))
}

// WriteCSV writes the records to path in one pass, preceded by the header row.
func WriteCSV(records []models.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"start_date", "end_date", "production_type", "forecast_type", "generation_value"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.StartDate,
			r.EndDate,
			r.ProductionType,
			r.ForecastType,
			strconv.FormatFloat(r.GenerationValue, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// WriteSnapshot flattens, sorts and writes one timestamped CSV snapshot,
// named after the current time in loc. Returns the path written.
func WriteSnapshot(forecasts []models.Forecast, baseName string, loc *time.Location) (string, error) {
	records := Flatten(forecasts)
	SortRecords(records)

	path := SnapshotName(baseName, time.Now().In(loc))
	if err := WriteCSV(records, path); err != nil {
		return "", fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return path, nil
}
