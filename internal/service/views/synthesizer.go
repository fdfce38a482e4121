// Package views derives the per-view payloads of one update cycle from the
// dataset snapshot. Everything here is pure: the same inputs always give
// the same payloads.
package views

import (
	"github.com/ougirez/ehrenamt/internal/domain"
	"github.com/ougirez/ehrenamt/internal/domain/dto"
	"github.com/ougirez/ehrenamt/internal/service/metric"
)

// Report lists the substitutions made while building the views so the
// caller can log and count them.
type Report struct {
	DisplayFallback  bool
	ViewportFallback bool
	EmptyViews       []string
}

const (
	ViewDistribution = "distribution"
	ViewRanking      = "ranking"
	ViewTimeSeries   = "time_series"
	ViewComparison   = "comparison"
)

// Build synthesizes every view for the selected region under the given filters.
func Build(d *domain.Dataset, selected string, f domain.Filters) (*dto.Views, Report) {
	var rep Report

	column := metric.Resolve(f.VolunteeringType, f.Statistic)

	region := selected
	if !d.HasRegion(f.Year, region) {
		region = domain.FallbackRegion
		rep.DisplayFallback = selected != domain.FallbackRegion
	}

	v := &dto.Views{
		SelectedRegion:  selected,
		DisplayedRegion: region,
		Year:            f.Year,
		Column:          column,
	}

	var zoomed bool
	v.Map, zoomed = mapView(d, region, column, f.Year)
	rep.ViewportFallback = region != domain.FallbackRegion && !zoomed

	v.Distribution = distribution(d, region, f)
	v.Ranking = ranking(d, column, f)
	v.TimeSeries = timeSeries(d, region, column)
	v.Comparison = comparison(d, f)

	if !v.Distribution.Available {
		rep.EmptyViews = append(rep.EmptyViews, ViewDistribution)
	}
	if !v.Ranking.Available {
		rep.EmptyViews = append(rep.EmptyViews, ViewRanking)
	}
	if len(v.TimeSeries.Points) == 0 {
		rep.EmptyViews = append(rep.EmptyViews, ViewTimeSeries)
	}
	if len(v.Comparison.Rows) == 0 {
		rep.EmptyViews = append(rep.EmptyViews, ViewComparison)
	}

	return v, rep
}

func mapView(d *domain.Dataset, region, column string, year domain.Year) (dto.MapView, bool) {
	records := d.RecordsForYear(year)
	trace := make([]dto.MapCell, 0, len(records))
	for _, r := range records {
		if r.RegionName == domain.FallbackRegion {
			continue
		}
		cell := dto.MapCell{Region: r.RegionName, Selected: r.RegionName == region}
		if val, ok := r.Value(column); ok {
			cell.Value = &val
		}
		trace = append(trace, cell)
	}

	vp, zoomed := viewport(d, region)
	return dto.MapView{Trace: trace, Viewport: vp}, zoomed
}
