package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rte-collector/internal/models"
)

func makeForecast(productionType string, n int, start time.Time) models.Forecast {
	f := models.Forecast{ProductionType: productionType, Type: "CURRENT"}
	for i := 0; i < n; i++ {
		s := start.Add(time.Duration(i) * 30 * time.Minute)
		f.Values = append(f.Values, models.ForecastValue{
			StartDate: s.Format(time.RFC3339),
			EndDate:   s.Add(30 * time.Minute).Format(time.RFC3339),
			Value:     float64(100 + i),
		})
	}
	return f
}

func TestFlatten_CarriesForecastFields(t *testing.T) {
	forecast := models.Forecast{
		ProductionType: "WIND_ONSHORE",
		Type:           "CURRENT",
		Values: []models.ForecastValue{
			{StartDate: "2024-01-01T00:00:00+01:00", EndDate: "2024-01-01T00:30:00+01:00", Value: 120.5},
		},
	}

	records := Flatten([]models.Forecast{forecast})
	require.Len(t, records, 1)
	assert.Equal(t, "WIND_ONSHORE", records[0].ProductionType)
	assert.Equal(t, "CURRENT", records[0].ForecastType)
	assert.Equal(t, "2024-01-01T00:00:00+01:00", records[0].StartDate)
	assert.Equal(t, "2024-01-01T00:30:00+01:00", records[0].EndDate)
	assert.InDelta(t, 120.5, records[0].GenerationValue, 0.001)
}

func TestFlatten_RowCount(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	forecasts := []models.Forecast{
		makeForecast("WIND_ONSHORE", 4, start),
		makeForecast("WIND_ONSHORE", 3, start.Add(2*time.Hour)),
	}

	assert.Len(t, Flatten(forecasts), 7)
	assert.Empty(t, Flatten(nil))
}

func TestSortRecords_Chronological(t *testing.T) {
	records := []models.Record{
		{StartDate: "2024-01-02T00:00:00+01:00"},
		{StartDate: "2024-01-01T00:00:00+01:00"},
		{StartDate: "2024-01-01T12:00:00+01:00"},
	}

	SortRecords(records)

	assert.Equal(t, "2024-01-01T00:00:00+01:00", records[0].StartDate)
	assert.Equal(t, "2024-01-01T12:00:00+01:00", records[1].StartDate)
	assert.Equal(t, "2024-01-02T00:00:00+01:00", records[2].StartDate)
}

func TestSortRecords_MixedOffsets(t *testing.T) {
	// Same instants expressed with different zone offsets must still order
	// chronologically, not lexicographically.
	records := []models.Record{
		{StartDate: "2024-10-27T03:30:00+01:00"}, // later instant
		{StartDate: "2024-10-27T02:30:00+02:00"}, // earlier instant (before fall back)
	}

	SortRecords(records)

	assert.Equal(t, "2024-10-27T02:30:00+02:00", records[0].StartDate)
}

func TestSortRecords_StableOnTies(t *testing.T) {
	records := []models.Record{
		{StartDate: "2024-01-01T00:00:00+01:00", ProductionType: "first"},
		{StartDate: "2024-01-01T00:00:00+01:00", ProductionType: "second"},
	}

	SortRecords(records)

	assert.Equal(t, "first", records[0].ProductionType)
	assert.Equal(t, "second", records[1].ProductionType)
}

func TestSnapshotName(t *testing.T) {
	now := time.Date(2024, 6, 1, 13, 45, 30, 0, time.UTC)
	assert.Equal(t, "electricity_generation_wind_20240601_134530.csv",
		SnapshotName("electricity_generation_wind", now))

	// Successive runs get distinct names, so no snapshot overwrites another.
	later := now.Add(time.Second)
	assert.NotEqual(t, SnapshotName("x", now), SnapshotName("x", later))
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.csv")

	records := Flatten([]models.Forecast{
		makeForecast("SOLAR", 3, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, WriteCSV(records, path))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestWriteCSV_Header(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")

	require.NoError(t, WriteCSV(nil, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "start_date,end_date,production_type,forecast_type,generation_value\n", string(raw))
}

func TestWriteXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.xlsx")

	records := Flatten([]models.Forecast{
		makeForecast("WIND_ONSHORE", 2, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, WriteXLSX(records, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
