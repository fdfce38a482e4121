package views

import (
	"github.com/ougirez/ehrenamt/internal/domain"
	"github.com/ougirez/ehrenamt/internal/domain/dto"
)

func timeSeries(d *domain.Dataset, region, column string) dto.TimeSeriesView {
	out := dto.TimeSeriesView{Region: region, Points: []dto.SeriesPoint{}}
	for _, year := range d.Years() {
		rec, ok := d.Record(year, region)
		if !ok {
			continue
		}
		if v, ok := rec.Value(column); ok {
			out.Points = append(out.Points, dto.SeriesPoint{Year: year, Value: round(v)})
		}
	}
	if len(out.Points) == 0 {
		out.Placeholder = dto.NoDataPlaceholder
	}
	return out
}

// comparison lists the demographic breakdown for (group, type, year).
func comparison(d *domain.Dataset, f domain.Filters) dto.ComparisonView {
	out := dto.ComparisonView{Group: f.Demographic, Rows: []dto.ComparisonRow{}}
	if f.Demographic != "" {
		for _, r := range d.Demographics(f.Year, f.Demographic, f.VolunteeringType) {
			out.Rows = append(out.Rows, dto.ComparisonRow{Category: r.Category, Value: round(r.Value)})
		}
	}
	if len(out.Rows) == 0 {
		out.Placeholder = dto.NoDataPlaceholder
	}
	return out
}
