package store

import (
	"github.com/ougirez/ehrenamt/internal/domain"
	geojson "github.com/paulmach/go.geojson"
)

func toRing(coords [][]float64) []domain.Point {
	ring := make([]domain.Point, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		ring = append(ring, domain.Point{Lon: c[0], Lat: c[1]})
	}
	return ring
}

func toPolygon(rings [][][]float64) domain.Polygon {
	poly := make(domain.Polygon, 0, len(rings))
	for _, r := range rings {
		poly = append(poly, toRing(r))
	}
	return poly
}

// polygonsOf converts Polygon and MultiPolygon geometries. Other geometry
// types carry no area and yield nil.
func polygonsOf(g *geojson.Geometry) []domain.Polygon {
	if g == nil {
		return nil
	}
	switch {
	case g.IsPolygon():
		return []domain.Polygon{toPolygon(g.Polygon)}
	case g.IsMultiPolygon():
		out := make([]domain.Polygon, 0, len(g.MultiPolygon))
		for _, p := range g.MultiPolygon {
			out = append(out, toPolygon(p))
		}
		return out
	}
	return nil
}
