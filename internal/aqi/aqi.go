// Package aqi computes a demonstration Air Quality Index from pollutant
// concentrations. The formula is an illustrative linear combination, not a
// certified standard such as the EPA breakpoint tables.
package aqi

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a pollutant concentration is negative.
var ErrInvalidArgument = errors.New("invalid argument")

// Category is the discrete severity label derived from an AQI score.
type Category string

const (
	CategoryGood     Category = "Good"
	CategoryModerate Category = "Moderate"
	CategoryPoor     Category = "Poor"
	CategoryVeryPoor Category = "Very Poor"
	CategorySevere   Category = "Severe"
)

// MaxAQI is the upper clamp applied to every computed score.
const MaxAQI = 500.0

// Formula weights, one per pollutant in the input vector.
const (
	weightPM25 = 0.4
	weightPM10 = 0.2
	weightNO2  = 0.15
	weightSO2  = 0.1
	weightCO   = 10.0
	weightO3   = 0.05
)

// Threshold maps an AQI upper bound (inclusive) to its category.
type Threshold struct {
	UpperBound float64
	Category   Category
}

// Thresholds is the ordered, right-closed partition of [0, MaxAQI].
// A score equal to an upper bound belongs to that bucket: 50 is Good,
// anything above 50 up to 100 is Moderate, and so on.
var Thresholds = []Threshold{
	{UpperBound: 50, Category: CategoryGood},
	{UpperBound: 100, Category: CategoryModerate},
	{UpperBound: 200, Category: CategoryPoor},
	{UpperBound: 300, Category: CategoryVeryPoor},
	{UpperBound: MaxAQI, Category: CategorySevere},
}

// Score computes the AQI for a pollutant vector and buckets it into a
// category. All inputs must be non-negative; a negative value returns
// ErrInvalidArgument. The score is clamped to MaxAQI on the upper end.
func Score(pm25, pm10, no2, so2, co, o3 float64) (float64, Category, error) {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"pm2_5", pm25},
		{"pm10", pm10},
		{"no2", no2},
		{"so2", so2},
		{"co", co},
		{"o3", o3},
	} {
		if v.value < 0 {
			return 0, "", fmt.Errorf("%w: %s must be non-negative, got %g", ErrInvalidArgument, v.name, v.value)
		}
	}

	raw := pm25*weightPM25 + pm10*weightPM10 + no2*weightNO2 +
		so2*weightSO2 + co*weightCO + o3*weightO3

	score := raw
	if score > MaxAQI {
		score = MaxAQI
	}

	return score, Categorize(score), nil
}

// Categorize buckets an already-clamped AQI score into its severity category.
func Categorize(score float64) Category {
	for _, t := range Thresholds {
		if score <= t.UpperBound {
			return t.Category
		}
	}
	return CategorySevere
}

// Color returns the display color associated with a category, matching the
// gauge rendering on the dashboard side.
func (c Category) Color() string {
	switch c {
	case CategoryGood:
		return "green"
	case CategoryModerate:
		return "yellow"
	case CategoryPoor:
		return "orange"
	case CategoryVeryPoor:
		return "red"
	default:
		return "darkred"
	}
}
