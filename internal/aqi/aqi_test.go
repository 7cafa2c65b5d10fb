package aqi

import (
	"errors"
	"math"
	"testing"
)

// TestScoreExample checks the documented reference scenario end to end.
func TestScoreExample(t *testing.T) {
	score, cat, err := Score(50, 80, 30, 20, 1, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 0.4*50 + 0.2*80 + 0.15*30 + 0.1*20 + 10*1 + 0.05*40 = 54.5
	if math.Abs(score-54.5) > 1e-9 {
		t.Errorf("expected score 54.5, got %v", score)
	}
	if cat != CategoryModerate {
		t.Errorf("expected category %q, got %q", CategoryModerate, cat)
	}
}

// TestScoreBoundaries exercises the right-closed bucket edges: a score equal
// to an upper bound stays in the lower bucket.
func TestScoreBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		pm25    float64 // pm2.5 alone drives the raw score at weight 0.4
		wantAQI float64
		wantCat Category
	}{
		{"exactly 50 is Good", 125, 50, CategoryGood},
		{"just above 50 is Moderate", 125.00025, 50.0001, CategoryModerate},
		{"exactly 100 is Moderate", 250, 100, CategoryModerate},
		{"exactly 200 is Poor", 500, 200, CategoryPoor},
		{"exactly 300 is VeryPoor", 750, 300, CategoryVeryPoor},
		{"just above 300 is Severe", 750.00025, 300.0001, CategorySevere},
		{"raw 600 clamps to 500 Severe", 1500, 500, CategorySevere},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, cat, err := Score(tc.pm25, 0, 0, 0, 0, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(score-tc.wantAQI) > 1e-9 {
				t.Errorf("expected score %v, got %v", tc.wantAQI, score)
			}
			if cat != tc.wantCat {
				t.Errorf("expected category %q, got %q", tc.wantCat, cat)
			}
		})
	}
}

// TestScoreRejectsNegative verifies every input position is validated.
func TestScoreRejectsNegative(t *testing.T) {
	inputs := [][6]float64{
		{-1, 0, 0, 0, 0, 0},
		{0, -1, 0, 0, 0, 0},
		{0, 0, -1, 0, 0, 0},
		{0, 0, 0, -1, 0, 0},
		{0, 0, 0, 0, -0.1, 0},
		{0, 0, 0, 0, 0, -1},
	}

	for _, in := range inputs {
		_, _, err := Score(in[0], in[1], in[2], in[3], in[4], in[5])
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Score(%v) expected ErrInvalidArgument, got %v", in, err)
		}
	}
}

// TestCategorizeMonotonic sweeps the score range and checks categories never
// step backwards in severity.
func TestCategorizeMonotonic(t *testing.T) {
	rank := map[Category]int{
		CategoryGood:     0,
		CategoryModerate: 1,
		CategoryPoor:     2,
		CategoryVeryPoor: 3,
		CategorySevere:   4,
	}

	prev := -1
	for score := 0.0; score <= MaxAQI; score += 0.25 {
		r, ok := rank[Categorize(score)]
		if !ok {
			t.Fatalf("unknown category for score %v", score)
		}
		if r < prev {
			t.Fatalf("category rank decreased at score %v", score)
		}
		prev = r
	}
}

// TestThresholdTable pins the threshold constants directly so a table edit
// cannot silently reorder or drop a bucket.
func TestThresholdTable(t *testing.T) {
	want := []Threshold{
		{50, CategoryGood},
		{100, CategoryModerate},
		{200, CategoryPoor},
		{300, CategoryVeryPoor},
		{500, CategorySevere},
	}

	if len(Thresholds) != len(want) {
		t.Fatalf("expected %d thresholds, got %d", len(want), len(Thresholds))
	}
	for i, w := range want {
		if Thresholds[i] != w {
			t.Errorf("threshold %d: expected %+v, got %+v", i, w, Thresholds[i])
		}
	}

	// Bounds must be strictly increasing for Categorize's linear scan.
	for i := 1; i < len(Thresholds); i++ {
		if Thresholds[i].UpperBound <= Thresholds[i-1].UpperBound {
			t.Errorf("threshold bounds not strictly increasing at index %d", i)
		}
	}
}

func TestCategoryColors(t *testing.T) {
	cases := map[Category]string{
		CategoryGood:     "green",
		CategoryModerate: "yellow",
		CategoryPoor:     "orange",
		CategoryVeryPoor: "red",
		CategorySevere:   "darkred",
	}
	for cat, color := range cases {
		if got := cat.Color(); got != color {
			t.Errorf("%s: expected color %q, got %q", cat, color, got)
		}
	}
}
