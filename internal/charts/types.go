// Package charts builds render-ready view configurations from the synthetic
// dataset. The frontend draws them; no plotting happens server-side.
package charts

// ChartPoint is one labeled value in a series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is a named sequence of points with an optional display color.
type ChartSeries struct {
	Name   string       `json:"name"`
	Color  string       `json:"color,omitempty"`
	Points []ChartPoint `json:"points"`
}

// ChartConfig is the generic render-ready chart description used for
// histograms and line charts.
type ChartConfig struct {
	ChartType string        `json:"chartType"` // "bar", "line"
	Title     string        `json:"title"`
	XAxis     string        `json:"xAxis,omitempty"`
	YAxis     string        `json:"yAxis,omitempty"`
	Series    []ChartSeries `json:"series"`
}

// HeatmapConfig carries a square correlation matrix. Values[i][j] is the
// Pearson correlation between Columns[i] and Columns[j].
type HeatmapConfig struct {
	Title   string      `json:"title"`
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// ScatterPoint is one (x, y) observation in a pair-grid cell.
type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PairCell is one off-diagonal panel of the pair grid.
type PairCell struct {
	XColumn string         `json:"xColumn"`
	YColumn string         `json:"yColumn"`
	Points  []ScatterPoint `json:"points"`
}

// PairGridConfig is the pairwise scatter grid over the pollutant columns.
// Diagonal cells are omitted; the frontend renders histograms there.
type PairGridConfig struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Cells   []PairCell `json:"cells"`
}

// ColumnSummary holds descriptive statistics for one numeric column.
type ColumnSummary struct {
	Column string  `json:"column"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// SummaryConfig is the dataset-overview view: the first few rows plus
// per-column statistics.
type SummaryConfig struct {
	Title    string           `json:"title"`
	RowCount int              `json:"rowCount"`
	Head     []map[string]any `json:"head"`
	Columns  []ColumnSummary  `json:"columns"`
}

// Display color palette for generated series.
var palette = []string{"skyblue", "green", "orange", "purple", "teal", "crimson"}
