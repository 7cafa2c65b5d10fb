// Package dashboard orchestrates the dataset cache, the AQI evaluator and the
// optional live fetcher behind a single service consumed by the HTTP API.
package dashboard

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/avelez-dev/airquality-dashboard/internal/aqi"
	"github.com/avelez-dev/airquality-dashboard/internal/dataset"
	"github.com/avelez-dev/airquality-dashboard/internal/live"
)

// ErrLiveDisabled is returned when the live endpoint is hit without a fetcher.
var ErrLiveDisabled = errors.New("live readings are disabled")

// Prediction is the scored result for a user-supplied pollutant vector.
type Prediction struct {
	AQI      float64      `json:"aqi"`
	Category aqi.Category `json:"category"`
	Color    string       `json:"color"`
}

// LiveResult pairs a fetched reading with its score.
type LiveResult struct {
	Reading    live.Reading `json:"reading"`
	Prediction Prediction   `json:"prediction"`
}

// Service holds the current generation parameters and serves the memoized
// dataset. Rotation swaps the seed under the write lock; reads only take the
// read lock, so chart requests never block behind a regeneration.
type Service struct {
	mu    sync.RWMutex
	cache *dataset.Cache
	n     int
	seed  int64

	fetcher live.Fetcher // nil when live readings are disabled
}

// NewService creates a Service with the given generation parameters.
// fetcher may be nil.
func NewService(cache *dataset.Cache, n int, seed int64, fetcher live.Fetcher) *Service {
	return &Service{
		cache:   cache,
		n:       n,
		seed:    seed,
		fetcher: fetcher,
	}
}

// Dataset returns the memoized dataset for the current parameters.
func (s *Service) Dataset() (dataset.Dataset, error) {
	s.mu.RLock()
	n, seed := s.n, s.seed
	s.mu.RUnlock()

	return s.cache.Get(n, seed)
}

// Params reports the current generation parameters.
func (s *Service) Params() (int, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.n, s.seed
}

// Rotate switches to a new seed, drops the previous memo entry and warms the
// cache for the new parameters.
func (s *Service) Rotate(seed int64) error {
	s.mu.Lock()
	old := s.seed
	s.seed = seed
	n := s.n
	s.mu.Unlock()

	s.cache.Invalidate(n, old)

	if _, err := s.cache.Get(n, seed); err != nil {
		return err
	}
	log.Printf("INFO: rotated dataset seed %d -> %d", old, seed)
	return nil
}

// Predict scores a pollutant vector.
func (s *Service) Predict(pm25, pm10, no2, so2, co, o3 float64) (Prediction, error) {
	score, cat, err := aqi.Score(pm25, pm10, no2, so2, co, o3)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{AQI: score, Category: cat, Color: cat.Color()}, nil
}

// Live fetches current pollutant concentrations for a coordinate and scores
// them with the same formula used for predictions.
func (s *Service) Live(ctx context.Context, lat, lon float64) (LiveResult, error) {
	if s.fetcher == nil {
		return LiveResult{}, ErrLiveDisabled
	}

	reading, err := s.fetcher.Fetch(ctx, lat, lon)
	if err != nil {
		return LiveResult{}, err
	}

	// Upstream occasionally reports small negative concentrations around
	// sensor noise; clamp them before scoring.
	pred, err := s.Predict(
		nonNegative(reading.PM25),
		nonNegative(reading.PM10),
		nonNegative(reading.NO2),
		nonNegative(reading.SO2),
		nonNegative(reading.CO),
		nonNegative(reading.O3),
	)
	if err != nil {
		return LiveResult{}, err
	}

	return LiveResult{Reading: reading, Prediction: pred}, nil
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
