// Package dataset synthesizes the deterministic demo air-quality dataset and
// memoizes it per (n, seed) pair.
package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/avelez-dev/airquality-dashboard/internal/aqi"
)

// ErrInvalidArgument is returned when the requested dataset size is not positive.
var ErrInvalidArgument = errors.New("invalid argument")

// Epoch is the date of the first synthetic record.
var Epoch = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

// Default generation parameters.
const (
	DefaultSize = 200
	DefaultSeed = 42
)

// Generate produces n daily records from a single pseudo-random source seeded
// once per call. Fields are drawn column-major in a fixed order (PM2.5, PM10,
// NO2, SO2, CO, O3, Temperature, Humidity, Wind), so widening one field's
// range never perturbs the fields drawn before it. The same (n, seed) always
// yields a bit-identical dataset.
func Generate(n int, seed int64) (Dataset, error) {
	if n <= 0 {
		return Dataset{}, fmt.Errorf("%w: dataset size must be positive, got %d", ErrInvalidArgument, n)
	}

	rng := rand.New(rand.NewSource(seed))
	records := make([]Record, n)

	for i := range records {
		records[i].PM25 = intBetween(rng, 10, 300)
	}
	for i := range records {
		records[i].PM10 = intBetween(rng, 20, 400)
	}
	for i := range records {
		records[i].NO2 = intBetween(rng, 5, 150)
	}
	for i := range records {
		records[i].SO2 = intBetween(rng, 2, 80)
	}
	for i := range records {
		records[i].CO = floatBetween(rng, 0.1, 5.0)
	}
	for i := range records {
		records[i].O3 = intBetween(rng, 10, 250)
	}
	for i := range records {
		records[i].Temperature = floatBetween(rng, 10, 40)
	}
	for i := range records {
		records[i].Humidity = floatBetween(rng, 20, 90)
	}
	for i := range records {
		records[i].Wind = floatBetween(rng, 0, 10)
	}

	for i := range records {
		records[i].Date = Epoch.AddDate(0, 0, i)

		score, _, err := aqi.Score(
			float64(records[i].PM25),
			float64(records[i].PM10),
			float64(records[i].NO2),
			float64(records[i].SO2),
			records[i].CO,
			float64(records[i].O3),
		)
		if err != nil {
			// Generated concentrations are non-negative by construction.
			return Dataset{}, fmt.Errorf("scoring generated record %d: %w", i, err)
		}
		records[i].AQI = score
	}

	return Dataset{Records: records, N: n, Seed: seed}, nil
}

// intBetween draws a uniform integer from [lo, hi).
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}

// floatBetween draws a uniform real from [lo, hi).
func floatBetween(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
