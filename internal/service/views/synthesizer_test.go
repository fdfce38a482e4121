package views

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ougirez/ehrenamt/internal/domain"
	"github.com/ougirez/ehrenamt/internal/domain/dto"
	"github.com/ougirez/ehrenamt/internal/pkg/testutil"
)

var (
	fitAllViewport = dto.Viewport{
		Mode:     dto.ViewportFitAll,
		LonRange: &[2]float64{10.1, 16.58},
		LatRange: &[2]float64{46.6, 48.32},
	}
	tyrolViewport = dto.Viewport{
		Mode:     dto.ViewportRegion,
		LonRange: &[2]float64{10.1, 12.97},
		LatRange: &[2]float64{46.6, 47.7},
	}
)

func filters(vt domain.VolunteeringType, kind domain.StatisticKind, year domain.Year) domain.Filters {
	return domain.Filters{VolunteeringType: vt, Statistic: kind, Year: year}
}

func TestBuild_DisplayFallbackWhenRegionMissingInYear(t *testing.T) {
	d := testutil.Dataset()

	v, rep := Build(d, "Vienna", filters(domain.VolunteeringAny, domain.StatisticPercentage, 2006))

	if v.SelectedRegion != "Vienna" || v.DisplayedRegion != domain.FallbackRegion {
		t.Errorf("selected/displayed = %q/%q", v.SelectedRegion, v.DisplayedRegion)
	}
	if !rep.DisplayFallback {
		t.Error("DisplayFallback not reported")
	}
	if diff := cmp.Diff(fitAllViewport, v.Map.Viewport); diff != "" {
		t.Errorf("viewport (-want +got):\n%s", diff)
	}
}

func TestBuild_ZoomsToOuterRing(t *testing.T) {
	d := testutil.Dataset()

	v, rep := Build(d, "Tyrol", filters(domain.VolunteeringFormal, domain.StatisticPercentage, 2016))

	if diff := cmp.Diff(tyrolViewport, v.Map.Viewport); diff != "" {
		t.Errorf("viewport (-want +got):\n%s", diff)
	}
	if rep.ViewportFallback || rep.DisplayFallback {
		t.Errorf("unexpected fallbacks: %+v", rep)
	}
}

func TestBuild_AggregateFitsAll(t *testing.T) {
	d := testutil.Dataset()

	v, rep := Build(d, domain.FallbackRegion, filters(domain.VolunteeringAny, domain.StatisticPercentage, 2016))

	if diff := cmp.Diff(fitAllViewport, v.Map.Viewport); diff != "" {
		t.Errorf("viewport (-want +got):\n%s", diff)
	}
	if rep.ViewportFallback {
		t.Error("aggregate region must not count as a viewport fallback")
	}
}

func TestBuild_MissingGeometryFitsAll(t *testing.T) {
	records := append(testutil.Records(),
		domain.RegionRecord{RegionName: "Salzburg", Year: 2016, Columns: map[string]float64{"any": 44}})
	d := domain.NewDataset(records, testutil.Geometries(), nil)

	v, rep := Build(d, "Salzburg", filters(domain.VolunteeringAny, domain.StatisticPercentage, 2016))

	if diff := cmp.Diff(fitAllViewport, v.Map.Viewport); diff != "" {
		t.Errorf("viewport (-want +got):\n%s", diff)
	}
	if !rep.ViewportFallback {
		t.Error("ViewportFallback not reported")
	}
	if v.DisplayedRegion != "Salzburg" {
		t.Errorf("displayed = %q", v.DisplayedRegion)
	}
}

func TestBuild_Distribution(t *testing.T) {
	d := testutil.Dataset()

	tests := []struct {
		name   string
		region string
		f      domain.Filters
		want   dto.DistributionView
	}{
		{
			name:   "tyrol formal",
			region: "Tyrol",
			f:      filters(domain.VolunteeringFormal, domain.StatisticMedianHours, 2016),
			want:   dto.DistributionView{Region: "Tyrol", Available: true, Center: 2.5, UpperDelta: 1.5, LowerDelta: 1.5, Mean: 3.1},
		},
		{
			name:   "aggregate any with mean outside band",
			region: domain.FallbackRegion,
			f:      filters(domain.VolunteeringAny, domain.StatisticPercentage, 2006),
			want:   dto.DistributionView{Region: domain.FallbackRegion, Available: true, Center: 2, UpperDelta: 2, LowerDelta: 1, Mean: 3.2},
		},
		{
			name:   "missing hours columns",
			region: "Vienna",
			f:      filters(domain.VolunteeringInformal, domain.StatisticAverageHours, 2012),
			want:   dto.DistributionView{Region: "Vienna", Placeholder: dto.NoDataPlaceholder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := Build(d, tt.region, tt.f)
			if diff := cmp.Diff(tt.want, v.Distribution); diff != "" {
				t.Errorf("distribution (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_Ranking(t *testing.T) {
	d := testutil.Dataset()

	v, _ := Build(d, "Vienna", filters(domain.VolunteeringInformal, domain.StatisticPercentage, 2016))
	want := dto.RankingView{
		Available: true,
		Highest:   dto.RankEntry{Region: "Tyrol", Value: 40.0},
		Lowest:    dto.RankEntry{Region: "Vienna", Value: 29.9},
		Text:      "In 2016, Tyrol has the highest value (40.0%) and Vienna the lowest (29.9%).",
	}
	if diff := cmp.Diff(want, v.Ranking); diff != "" {
		t.Errorf("ranking (-want +got):\n%s", diff)
	}
}

func TestBuild_RankingTieGoesToFirstRow(t *testing.T) {
	d := testutil.Dataset()

	for i := 0; i < 5; i++ {
		v, _ := Build(d, "Tyrol", filters(domain.VolunteeringFormal, domain.StatisticPercentage, 2022))
		if v.Ranking.Highest.Region != "Vienna" || v.Ranking.Lowest.Region != "Vienna" {
			t.Fatalf("tie resolved to %+v / %+v, want Vienna for both", v.Ranking.Highest, v.Ranking.Lowest)
		}
	}
}

func TestBuild_RankingWithoutColumn(t *testing.T) {
	d := testutil.Dataset()

	v, rep := Build(d, "Tyrol", filters(domain.VolunteeringInformal, domain.StatisticAverageHours, 2012))

	if v.Ranking.Available || v.Ranking.Placeholder != dto.NoDataPlaceholder {
		t.Errorf("ranking = %+v", v.Ranking)
	}
	if diff := cmp.Diff([]string{ViewDistribution, ViewRanking, ViewComparison}, rep.EmptyViews); diff != "" {
		t.Errorf("empty views (-want +got):\n%s", diff)
	}
	// The map is unaffected by the other views' placeholders.
	if len(v.Map.Trace) != 2 {
		t.Errorf("map trace = %+v", v.Map.Trace)
	}
}

func TestBuild_MapTrace(t *testing.T) {
	d := testutil.Dataset()

	v, _ := Build(d, "Tyrol", filters(domain.VolunteeringInformal, domain.StatisticAverageHours, 2016))

	val := 3.5
	want := []dto.MapCell{
		{Region: "Vienna"},
		{Region: "Tyrol", Value: &val, Selected: true},
	}
	if diff := cmp.Diff(want, v.Map.Trace); diff != "" {
		t.Errorf("trace (-want +got):\n%s", diff)
	}
	if v.Column != "average_hours_informal" {
		t.Errorf("column = %q", v.Column)
	}
}

func TestBuild_TimeSeries(t *testing.T) {
	d := testutil.Dataset()

	v, _ := Build(d, "Tyrol", filters(domain.VolunteeringAny, domain.StatisticPercentage, 2016))

	want := []dto.SeriesPoint{{Year: 2006, Value: 47}, {Year: 2012, Value: 49.3}, {Year: 2016, Value: 50.2}, {Year: 2022, Value: 55}}
	if diff := cmp.Diff(want, v.TimeSeries.Points); diff != "" {
		t.Errorf("series (-want +got):\n%s", diff)
	}
}

func TestBuild_Comparison(t *testing.T) {
	d := testutil.Dataset()

	f := filters(domain.VolunteeringFormal, domain.StatisticPercentage, 2016)
	f.Demographic = "gender"
	v, _ := Build(d, "Tyrol", f)
	want := dto.ComparisonView{
		Group: "gender",
		Rows:  []dto.ComparisonRow{{Category: "female", Value: 27.5}, {Category: "male", Value: 34.1}},
	}
	if diff := cmp.Diff(want, v.Comparison); diff != "" {
		t.Errorf("comparison (-want +got):\n%s", diff)
	}

	f.Demographic = "age"
	v, rep := Build(d, "Tyrol", f)
	if v.Comparison.Placeholder != dto.NoDataPlaceholder || len(v.Comparison.Rows) != 0 {
		t.Errorf("comparison = %+v", v.Comparison)
	}
	if !v.Ranking.Available || !v.Distribution.Available {
		t.Error("an empty comparison must not affect other views")
	}
	if diff := cmp.Diff([]string{ViewComparison}, rep.EmptyViews); diff != "" {
		t.Errorf("empty views (-want +got):\n%s", diff)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	d := testutil.Dataset()
	f := filters(domain.VolunteeringFormal, domain.StatisticMedianHours, 2016)
	f.Demographic = "gender"

	first, _ := Build(d, "Vienna", f)
	second, _ := Build(d, "Vienna", f)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("payloads differ (-first +second):\n%s", diff)
	}
}
