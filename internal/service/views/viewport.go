package views

import (
	"math"

	"github.com/ougirez/ehrenamt/internal/domain"
	"github.com/ougirez/ehrenamt/internal/domain/dto"
)

type bbox struct {
	minLon, minLat, maxLon, maxLat float64
}

func emptyBBox() bbox {
	return bbox{minLon: math.Inf(1), minLat: math.Inf(1), maxLon: math.Inf(-1), maxLat: math.Inf(-1)}
}

func (b *bbox) extend(ring []domain.Point) {
	for _, pt := range ring {
		b.minLon = math.Min(b.minLon, pt.Lon)
		b.minLat = math.Min(b.minLat, pt.Lat)
		b.maxLon = math.Max(b.maxLon, pt.Lon)
		b.maxLat = math.Max(b.maxLat, pt.Lat)
	}
}

func (b bbox) empty() bool {
	return b.minLon > b.maxLon
}

func (b bbox) viewport(mode string) dto.Viewport {
	vp := dto.Viewport{Mode: mode}
	if b.empty() {
		return vp
	}
	vp.LonRange = &[2]float64{b.minLon, b.maxLon}
	vp.LatRange = &[2]float64{b.minLat, b.maxLat}
	return vp
}

// viewport zooms to the region's outer ring. The aggregate region, a
// region without geometry and a degenerate ring all fit every region
// instead; the bool reports whether a zoom happened.
func viewport(d *domain.Dataset, region string) (dto.Viewport, bool) {
	if region != domain.FallbackRegion {
		if g, ok := d.Geometry(region); ok {
			b := emptyBBox()
			b.extend(g.OuterRing())
			if !b.empty() {
				return b.viewport(dto.ViewportRegion), true
			}
		}
	}
	return fitAll(d), false
}

func fitAll(d *domain.Dataset) dto.Viewport {
	b := emptyBBox()
	for _, g := range d.Geometries() {
		b.extend(g.OuterRing())
	}
	return b.viewport(dto.ViewportFitAll)
}
