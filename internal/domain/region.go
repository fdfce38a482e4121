package domain

type Year = int

// FallbackRegion is the country-wide aggregate row. It is the initial
// selection and the substitute whenever a selection cannot be displayed.
const FallbackRegion = "Austria"

// RegionRecord is one row of the regional statistics table.
type RegionRecord struct {
	RegionName string
	Year       Year
	Columns    map[string]float64
}

func (r *RegionRecord) Value(column string) (float64, bool) {
	v, ok := r.Columns[column]
	return v, ok
}

// Point is a WGS84 coordinate in GeoJSON order.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Polygon is a ring list; the first ring is the outer boundary, the rest are holes.
type Polygon [][]Point

type GeometryRecord struct {
	RegionName string
	Polygons   []Polygon
}

// OuterRing returns the outer ring of the first polygon, nil if there is none.
func (g *GeometryRecord) OuterRing() []Point {
	if len(g.Polygons) == 0 || len(g.Polygons[0]) == 0 {
		return nil
	}
	return g.Polygons[0][0]
}

// DemographicRecord is one cell of the breakdown tables behind the comparison chart.
type DemographicRecord struct {
	Year             Year    `db:"year" json:"year"`
	Group            string  `db:"group_name" json:"group"`
	Category         string  `db:"category" json:"category"`
	VolunteeringType string  `db:"volunteering_type" json:"volunteering_type"`
	Value            float64 `db:"value" json:"value"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
