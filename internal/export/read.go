package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"rte-collector/internal/models"
)

// ReadCSV loads a snapshot written by WriteCSV back into records.
func ReadCSV(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	var records []models.Record
	for i, row := range rows[1:] {
		if len(row) != 5 {
			return nil, fmt.Errorf("%s: row %d has %d columns, want 5", path, i+2, len(row))
		}
		value, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: bad generation_value %q", path, i+2, row[4])
		}
		records = append(records, models.Record{
			StartDate:       row[0],
			EndDate:         row[1],
			ProductionType:  row[2],
			ForecastType:    row[3],
			GenerationValue: value,
		})
	}
	return records, nil
}
