package dashboard

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/avelez-dev/airquality-dashboard/internal/aqi"
	"github.com/avelez-dev/airquality-dashboard/internal/dataset"
	"github.com/avelez-dev/airquality-dashboard/internal/live"
)

func TestServiceDatasetMemoized(t *testing.T) {
	svc := NewService(dataset.NewCache(), 50, 42, nil)

	a, err := svc.Dataset()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := svc.Dataset()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("repeated Dataset calls are not value-equal")
	}
}

func TestServiceRotate(t *testing.T) {
	svc := NewService(dataset.NewCache(), 50, 42, nil)

	before, err := svc.Dataset()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Rotate(43); err != nil {
		t.Fatalf("rotate failed: %v", err)
	}

	if _, seed := svc.Params(); seed != 43 {
		t.Errorf("expected seed 43 after rotation, got %d", seed)
	}

	after, err := svc.Dataset()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reflect.DeepEqual(before.Records, after.Records) {
		t.Error("rotation did not change the dataset")
	}
}

func TestServicePredict(t *testing.T) {
	svc := NewService(dataset.NewCache(), 50, 42, nil)

	pred, err := svc.Predict(50, 80, 30, 20, 1, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(pred.AQI-54.5) > 1e-9 {
		t.Errorf("expected aqi 54.5, got %v", pred.AQI)
	}
	if pred.Category != aqi.CategoryModerate {
		t.Errorf("expected Moderate, got %q", pred.Category)
	}
	if pred.Color != "yellow" {
		t.Errorf("expected yellow, got %q", pred.Color)
	}

	if _, err := svc.Predict(-1, 0, 0, 0, 0, 0); !errors.Is(err, aqi.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

type stubFetcher struct {
	reading live.Reading
	err     error
}

func (s stubFetcher) Fetch(ctx context.Context, lat, lon float64) (live.Reading, error) {
	return s.reading, s.err
}

func TestServiceLive(t *testing.T) {
	svc := NewService(dataset.NewCache(), 50, 42, stubFetcher{
		reading: live.Reading{PM25: 50, PM10: 80, NO2: 30, SO2: 20, CO: 1, O3: 40},
	})

	res, err := svc.Live(context.Background(), 52.52, 13.41)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.Prediction.AQI-54.5) > 1e-9 {
		t.Errorf("expected aqi 54.5, got %v", res.Prediction.AQI)
	}
}

func TestServiceLiveClampsNegativeReadings(t *testing.T) {
	svc := NewService(dataset.NewCache(), 50, 42, stubFetcher{
		reading: live.Reading{PM25: -0.2, O3: 40},
	})

	res, err := svc.Live(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.Prediction.AQI-2) > 1e-9 {
		t.Errorf("expected aqi 2, got %v", res.Prediction.AQI)
	}
}

func TestServiceLiveDisabled(t *testing.T) {
	svc := NewService(dataset.NewCache(), 50, 42, nil)

	if _, err := svc.Live(context.Background(), 0, 0); !errors.Is(err, ErrLiveDisabled) {
		t.Errorf("expected ErrLiveDisabled, got %v", err)
	}
}
