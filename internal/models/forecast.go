package models

// Forecast is one forecast series as returned by the RTE generation_forecast API.
// Timestamps stay as the wire strings (RFC 3339 with zone offset).
type Forecast struct {
	ProductionType string          `json:"production_type"`
	Type           string          `json:"type"`
	Values         []ForecastValue `json:"values"`
}

type ForecastValue struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Value     float64 `json:"value"`
}

// Record is one flattened output row: a single forecast value carrying its
// parent forecast's production and forecast type.
type Record struct {
	StartDate       string
	EndDate         string
	ProductionType  string
	ForecastType    string
	GenerationValue float64
}
