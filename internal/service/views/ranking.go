package views

import (
	"fmt"

	"github.com/ougirez/ehrenamt/internal/domain"
	"github.com/ougirez/ehrenamt/internal/domain/dto"
	"github.com/ougirez/ehrenamt/internal/service/metric"
	"github.com/shopspring/decimal"
)

// ranking finds the highest and lowest region for the column in the active
// year. Ties go to the row that comes first in the table; the country
// aggregate and rows without the column take no part.
func ranking(d *domain.Dataset, column string, f domain.Filters) dto.RankingView {
	var (
		highest, lowest dto.RankEntry
		found           bool
	)

	for _, r := range d.RecordsForYear(f.Year) {
		if r.RegionName == domain.FallbackRegion {
			continue
		}
		v, ok := r.Value(column)
		if !ok {
			continue
		}
		if !found {
			highest = dto.RankEntry{Region: r.RegionName, Value: v}
			lowest = highest
			found = true
			continue
		}
		if v > highest.Value {
			highest = dto.RankEntry{Region: r.RegionName, Value: v}
		}
		if v < lowest.Value {
			lowest = dto.RankEntry{Region: r.RegionName, Value: v}
		}
	}

	if !found {
		return dto.RankingView{Placeholder: dto.NoDataPlaceholder}
	}

	unit := metric.Unit(f.Statistic)
	return dto.RankingView{
		Available: true,
		Highest:   highest,
		Lowest:    lowest,
		Text: fmt.Sprintf("In %d, %s has the highest value (%s%s) and %s the lowest (%s%s).",
			f.Year,
			highest.Region, decimal.NewFromFloat(highest.Value).StringFixed(1), unit,
			lowest.Region, decimal.NewFromFloat(lowest.Value).StringFixed(1), unit,
		),
	}
}
