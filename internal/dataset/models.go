package dataset

import (
	"time"
)

// Record is one synthetic daily observation. Temperature, Humidity and Wind
// are collected but do not feed the AQI formula; downstream charts still plot
// them, so they stay in the schema.
type Record struct {
	Date        time.Time `json:"date"` // midnight UTC
	PM25        int       `json:"pm2_5"`
	PM10        int       `json:"pm10"`
	NO2         int       `json:"no2"`
	SO2         int       `json:"so2"`
	CO          float64   `json:"co"`
	O3          int       `json:"o3"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Wind        float64   `json:"wind"`
	AQI         float64   `json:"aqi"`
}

// Dataset is an ordered sequence of daily records. Order is date order and is
// meaningful: the trend chart relies on it.
type Dataset struct {
	Records []Record `json:"records"`
	N       int      `json:"n"`
	Seed    int64    `json:"seed"`
}

// Pollutants lists the AQI input columns in formula order.
var Pollutants = []string{"pm2_5", "pm10", "no2", "so2", "co", "o3"}

// NumericColumns lists every numeric column, pollutants first, matching the
// generation order plus the derived AQI.
var NumericColumns = []string{"pm2_5", "pm10", "no2", "so2", "co", "o3", "temperature", "humidity", "wind", "aqi"}

// Column returns the named numeric column as a float slice, or false when the
// name is unknown.
func (d Dataset) Column(name string) ([]float64, bool) {
	extract, ok := columnExtractors[name]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(d.Records))
	for i, r := range d.Records {
		out[i] = extract(r)
	}
	return out, true
}

var columnExtractors = map[string]func(Record) float64{
	"pm2_5":       func(r Record) float64 { return float64(r.PM25) },
	"pm10":        func(r Record) float64 { return float64(r.PM10) },
	"no2":         func(r Record) float64 { return float64(r.NO2) },
	"so2":         func(r Record) float64 { return float64(r.SO2) },
	"co":          func(r Record) float64 { return r.CO },
	"o3":          func(r Record) float64 { return float64(r.O3) },
	"temperature": func(r Record) float64 { return r.Temperature },
	"humidity":    func(r Record) float64 { return r.Humidity },
	"wind":        func(r Record) float64 { return r.Wind },
	"aqi":         func(r Record) float64 { return r.AQI },
}
