package dto

import "github.com/ougirez/ehrenamt/internal/domain"

// NoDataPlaceholder is shown by a single view when its filtered slice is empty.
const NoDataPlaceholder = "no data for this selection"

const (
	ViewportFitAll = "fit_all"
	ViewportRegion = "region"
)

// Views is everything one update cycle emits.
type Views struct {
	SelectedRegion  string           `json:"selected_region"`
	DisplayedRegion string           `json:"displayed_region"`
	Year            domain.Year      `json:"year"`
	Column          string           `json:"column"`
	Map             MapView          `json:"map"`
	Distribution    DistributionView `json:"distribution"`
	Ranking         RankingView      `json:"ranking"`
	TimeSeries      TimeSeriesView   `json:"time_series"`
	Comparison      ComparisonView   `json:"comparison"`
}

type MapCell struct {
	Region   string   `json:"region"`
	Value    *float64 `json:"value"`
	Selected bool     `json:"selected"`
}

type Viewport struct {
	Mode     string      `json:"mode"`
	LonRange *[2]float64 `json:"lon_range,omitempty"`
	LatRange *[2]float64 `json:"lat_range,omitempty"`
}

type MapView struct {
	Trace    []MapCell `json:"trace"`
	Viewport Viewport  `json:"viewport"`
}

// DistributionView is an error-band around the median with the mean as a
// separate point. The mean is not assumed to lie inside the band.
type DistributionView struct {
	Region      string  `json:"region"`
	Available   bool    `json:"available"`
	Center      float64 `json:"center"`
	UpperDelta  float64 `json:"upper_delta"`
	LowerDelta  float64 `json:"lower_delta"`
	Mean        float64 `json:"mean"`
	Placeholder string  `json:"placeholder,omitempty"`
}

type RankEntry struct {
	Region string  `json:"region"`
	Value  float64 `json:"value"`
}

type RankingView struct {
	Available   bool      `json:"available"`
	Highest     RankEntry `json:"highest"`
	Lowest      RankEntry `json:"lowest"`
	Text        string    `json:"text"`
	Placeholder string    `json:"placeholder,omitempty"`
}

type SeriesPoint struct {
	Year  domain.Year `json:"year"`
	Value float64     `json:"value"`
}

type TimeSeriesView struct {
	Region      string        `json:"region"`
	Points      []SeriesPoint `json:"points"`
	Placeholder string        `json:"placeholder,omitempty"`
}

type ComparisonRow struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

type ComparisonView struct {
	Group       string          `json:"group"`
	Rows        []ComparisonRow `json:"rows"`
	Placeholder string          `json:"placeholder,omitempty"`
}
