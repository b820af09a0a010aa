package export

import (
	"fmt"

	"rte-collector/internal/models"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Forecasts"

// WriteXLSX writes the records as a spreadsheet with the same columns as the
// CSV snapshots. Used by the export-xlsx tool for spreadsheet consumers.
func WriteXLSX(records []models.Record, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := []interface{}{"start_date", "end_date", "production_type", "forecast_type", "generation_value"}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.StartDate, r.EndDate, r.ProductionType, r.ForecastType, r.GenerationValue}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
