package charts

import (
	"errors"
	"fmt"
	"math"

	"github.com/avelez-dev/airquality-dashboard/internal/dataset"
)

// ErrUnknownColumn is returned when a requested column is not in the dataset.
var ErrUnknownColumn = errors.New("unknown column")

// DefaultBins is the histogram bin count used by the dashboard.
const DefaultBins = 30

// Histogram bins a numeric column into equal-width buckets and returns a bar
// chart config. Bin labels are formatted as "lo–hi" ranges.
func Histogram(ds dataset.Dataset, column string, bins int) (*ChartConfig, error) {
	if bins <= 0 {
		bins = DefaultBins
	}

	values, ok := ds.Column(column)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	if len(values) == 0 {
		return nil, errors.New("dataset has no rows")
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	width := (hi - lo) / float64(bins)
	if width == 0 {
		// All values identical; a single bucket holds everything.
		return &ChartConfig{
			ChartType: "bar",
			Title:     fmt.Sprintf("Distribution of %s", column),
			XAxis:     column,
			YAxis:     "count",
			Series: []ChartSeries{{
				Name:   column,
				Color:  palette[0],
				Points: []ChartPoint{{Label: fmt.Sprintf("%.4g", lo), Value: float64(len(values))}},
			}},
		}, nil
	}

	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1 // the max value lands in the last bucket
		}
		counts[idx]++
	}

	points := make([]ChartPoint, bins)
	for i, c := range counts {
		binLo := lo + float64(i)*width
		points[i] = ChartPoint{
			Label: fmt.Sprintf("%.4g–%.4g", binLo, binLo+width),
			Value: float64(c),
		}
	}

	return &ChartConfig{
		ChartType: "bar",
		Title:     fmt.Sprintf("Distribution of %s", column),
		XAxis:     column,
		YAxis:     "count",
		Series: []ChartSeries{{
			Name:   column,
			Color:  palette[0],
			Points: points,
		}},
	}, nil
}

// Trend returns the date-ordered AQI line series. Insertion order of the
// dataset is date order, so the records are emitted as-is.
func Trend(ds dataset.Dataset) *ChartConfig {
	points := make([]ChartPoint, len(ds.Records))
	for i, r := range ds.Records {
		points[i] = ChartPoint{
			Label: r.Date.Format("2006-01-02"),
			Value: roundTo(r.AQI, 2),
		}
	}

	return &ChartConfig{
		ChartType: "line",
		Title:     "AQI Over Time",
		XAxis:     "date",
		YAxis:     "aqi",
		Series: []ChartSeries{{
			Name:   "AQI",
			Color:  palette[1],
			Points: points,
		}},
	}
}

// Correlation computes the Pearson correlation matrix over every numeric
// column, including the derived AQI.
func Correlation(ds dataset.Dataset) *HeatmapConfig {
	cols := dataset.NumericColumns

	data := make([][]float64, len(cols))
	for i, name := range cols {
		data[i], _ = ds.Column(name)
	}

	values := make([][]float64, len(cols))
	for i := range cols {
		values[i] = make([]float64, len(cols))
		for j := range cols {
			if i == j {
				values[i][j] = 1
				continue
			}
			values[i][j] = roundTo(pearson(data[i], data[j]), 4)
		}
	}

	return &HeatmapConfig{
		Title:   "Correlation Heatmap of Pollutants",
		Columns: cols,
		Values:  values,
	}
}

// PairGrid builds the pairwise scatter panels for the given columns,
// defaulting to the six pollutants. Only the cells below the diagonal are
// materialized; the upper triangle mirrors them.
func PairGrid(ds dataset.Dataset, columns []string) (*PairGridConfig, error) {
	if len(columns) == 0 {
		columns = dataset.Pollutants
	}

	data := make([][]float64, len(columns))
	for i, name := range columns {
		col, ok := ds.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		data[i] = col
	}

	var cells []PairCell
	for i := 1; i < len(columns); i++ {
		for j := 0; j < i; j++ {
			points := make([]ScatterPoint, len(ds.Records))
			for k := range ds.Records {
				points[k] = ScatterPoint{X: data[j][k], Y: data[i][k]}
			}
			cells = append(cells, PairCell{
				XColumn: columns[j],
				YColumn: columns[i],
				Points:  points,
			})
		}
	}

	return &PairGridConfig{
		Title:   "Pair Plot of Pollutants",
		Columns: columns,
		Cells:   cells,
	}, nil
}

// Summary produces the dataset-overview view: the first headRows rows plus
// min/mean/max for every numeric column.
func Summary(ds dataset.Dataset, headRows int) *SummaryConfig {
	if headRows <= 0 || headRows > len(ds.Records) {
		headRows = 5
		if headRows > len(ds.Records) {
			headRows = len(ds.Records)
		}
	}

	head := make([]map[string]any, headRows)
	for i := 0; i < headRows; i++ {
		r := ds.Records[i]
		head[i] = map[string]any{
			"date":        r.Date.Format("2006-01-02"),
			"pm2_5":       r.PM25,
			"pm10":        r.PM10,
			"no2":         r.NO2,
			"so2":         r.SO2,
			"co":          roundTo(r.CO, 2),
			"o3":          r.O3,
			"temperature": roundTo(r.Temperature, 2),
			"humidity":    roundTo(r.Humidity, 2),
			"wind":        roundTo(r.Wind, 2),
			"aqi":         roundTo(r.AQI, 2),
		}
	}

	summaries := make([]ColumnSummary, 0, len(dataset.NumericColumns))
	for _, name := range dataset.NumericColumns {
		col, _ := ds.Column(name)
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range col {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		summaries = append(summaries, ColumnSummary{
			Column: name,
			Min:    roundTo(lo, 2),
			Max:    roundTo(hi, 2),
			Mean:   roundTo(mean(col), 2),
		})
	}

	return &SummaryConfig{
		Title:    "Dataset Overview",
		RowCount: len(ds.Records),
		Head:     head,
		Columns:  summaries,
	}
}
