// Package testutil holds fixtures shared by package tests.
package testutil

import "github.com/ougirez/ehrenamt/internal/domain"

var (
	ViennaRing = []domain.Point{
		{Lon: 16.18, Lat: 48.12}, {Lon: 16.58, Lat: 48.12}, {Lon: 16.58, Lat: 48.32},
		{Lon: 16.18, Lat: 48.32}, {Lon: 16.18, Lat: 48.12},
	}
	TyrolRing = []domain.Point{
		{Lon: 10.1, Lat: 46.6}, {Lon: 12.97, Lat: 46.7}, {Lon: 12.8, Lat: 47.7},
		{Lon: 10.4, Lat: 47.5}, {Lon: 10.1, Lat: 46.6},
	}
	// EastTyrolRing is a second polygon of Tyrol reaching past the outer ring of the first.
	EastTyrolRing = []domain.Point{
		{Lon: 12.0, Lat: 46.5}, {Lon: 13.2, Lat: 46.5}, {Lon: 13.2, Lat: 47.0}, {Lon: 12.0, Lat: 46.5},
	}
)

func hours(prefix string, q25, median, q75, mean float64) map[string]float64 {
	return map[string]float64{
		"25_hrs_" + prefix:        q25,
		"median_hours_" + prefix:  median,
		"75_hrs_" + prefix:        q75,
		"average_hours_" + prefix: mean,
	}
}

func row(region string, year domain.Year, cols ...map[string]float64) domain.RegionRecord {
	merged := make(map[string]float64)
	for _, c := range cols {
		for k, v := range c {
			merged[k] = v
		}
	}
	return domain.RegionRecord{RegionName: region, Year: year, Columns: merged}
}

// Records covers 2006, 2012, 2016 and 2022. Vienna has no 2006 row and
// Vienna and Tyrol tie on "formal" in 2022.
func Records() []domain.RegionRecord {
	return []domain.RegionRecord{
		row("Austria", 2006, map[string]float64{"any": 43.8, "formal": 27.9, "informal": 27.1}, hours("vlntrs", 1, 2, 4, 3.2)),
		row("Tyrol", 2006, map[string]float64{"any": 47.0, "formal": 31.0, "informal": 29.0}),

		row("Austria", 2012, map[string]float64{"any": 45.7, "formal": 27.9, "informal": 31.0}),
		row("Vienna", 2012, map[string]float64{"any": 38.2, "formal": 20.1, "informal": 28.4}),
		row("Tyrol", 2012, map[string]float64{"any": 49.3, "formal": 32.6, "informal": 33.3}),

		row("Austria", 2016, map[string]float64{"any": 46.3, "formal": 31.0, "informal": 30.1}, hours("formal", 1.5, 3, 5, 3.6)),
		row("Vienna", 2016, map[string]float64{"any": 40.1, "formal": 24.8, "informal": 29.9}, hours("formal", 1, 2, 3.5, 2.9)),
		row("Tyrol", 2016, map[string]float64{"any": 50.2, "formal": 30.5, "informal": 40.0, "average_hours_informal": 3.5}, hours("formal", 1, 2.5, 4, 3.1)),

		row("Austria", 2022, map[string]float64{"any": 49.4, "formal": 26.1, "informal": 36.7}),
		row("Vienna", 2022, map[string]float64{"any": 42.0, "formal": 30.0, "informal": 33.0}),
		row("Tyrol", 2022, map[string]float64{"any": 55.0, "formal": 30.0, "informal": 41.5}),
	}
}

func Geometries() []domain.GeometryRecord {
	return []domain.GeometryRecord{
		{RegionName: "Vienna", Polygons: []domain.Polygon{{ViennaRing}}},
		{RegionName: "Tyrol", Polygons: []domain.Polygon{{TyrolRing}, {EastTyrolRing}}},
	}
}

func Demographics() []domain.DemographicRecord {
	return []domain.DemographicRecord{
		{Year: 2016, Group: "gender", Category: "female", VolunteeringType: "formal", Value: 27.5},
		{Year: 2016, Group: "gender", Category: "male", VolunteeringType: "formal", Value: 34.1},
		{Year: 2016, Group: "gender", Category: "female", VolunteeringType: "informal", Value: 32.0},
		{Year: 2022, Group: "age", Category: "15-29", VolunteeringType: "any", Value: 43.0},
	}
}

func Dataset() *domain.Dataset {
	return domain.NewDataset(Records(), Geometries(), Demographics())
}
