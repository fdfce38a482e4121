package views

import (
	"github.com/ougirez/ehrenamt/internal/domain"
	"github.com/ougirez/ehrenamt/internal/domain/dto"
	"github.com/ougirez/ehrenamt/internal/service/metric"
	"github.com/shopspring/decimal"
)

const precision = 2

func round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(precision).InexactFloat64()
}

// distribution builds the hours band: center is the median, the deltas
// reach the quartiles and the mean is reported on its own.
func distribution(d *domain.Dataset, region string, f domain.Filters) dto.DistributionView {
	out := dto.DistributionView{Region: region, Placeholder: dto.NoDataPlaceholder}

	rec, ok := d.Record(f.Year, region)
	if !ok {
		return out
	}

	q25, ok25 := rec.Value(metric.LowerQuartile(f.VolunteeringType))
	median, okMedian := rec.Value(metric.Median(f.VolunteeringType))
	q75, ok75 := rec.Value(metric.UpperQuartile(f.VolunteeringType))
	mean, okMean := rec.Value(metric.Mean(f.VolunteeringType))
	if !ok25 || !okMedian || !ok75 || !okMean {
		return out
	}

	m := decimal.NewFromFloat(median)
	out.Available = true
	out.Placeholder = ""
	out.Center = round(median)
	out.UpperDelta = decimal.NewFromFloat(q75).Sub(m).Round(precision).InexactFloat64()
	out.LowerDelta = m.Sub(decimal.NewFromFloat(q25)).Round(precision).InexactFloat64()
	out.Mean = round(mean)
	return out
}
