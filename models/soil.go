package models

// SoilReading is a simulated pH/moisture/fertility snapshot. Readings are
// generated in-process (see the soil package) and never persisted.
type SoilReading struct {
	Fertility string  `json:"fertility"` // "High", "Medium" or "Low"
	PH        float64 `json:"ph"`
	Moisture  float64 `json:"moisture"` // percent
}

type HistoricalSoilEntry struct {
	Day string `json:"day"` // e.g. "Sep 2"
	SoilReading
}
