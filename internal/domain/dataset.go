package domain

import "sort"

// Dataset is the immutable snapshot every session reads from. It is built
// once and shared without locking.
type Dataset struct {
	records      []RegionRecord
	byYear       map[Year][]int
	index        map[Year]map[string]int
	years        []Year
	geometry     map[string]*GeometryRecord
	geomOrder    []string
	demographics []DemographicRecord
	known        map[string]struct{}
	regionOrder  []string
}

// NewDataset indexes the given tables. Record order is kept as the table
// order; a repeated (region, year) pair keeps its first occurrence.
func NewDataset(records []RegionRecord, geometries []GeometryRecord, demographics []DemographicRecord) *Dataset {
	d := &Dataset{
		records:      make([]RegionRecord, 0, len(records)),
		byYear:       make(map[Year][]int),
		index:        make(map[Year]map[string]int),
		geometry:     make(map[string]*GeometryRecord, len(geometries)),
		demographics: append([]DemographicRecord(nil), demographics...),
		known:        make(map[string]struct{}),
	}

	for _, r := range records {
		names, ok := d.index[r.Year]
		if !ok {
			names = make(map[string]int)
			d.index[r.Year] = names
			d.years = append(d.years, r.Year)
		}
		if _, dup := names[r.RegionName]; dup {
			continue
		}
		names[r.RegionName] = len(d.records)
		d.byYear[r.Year] = append(d.byYear[r.Year], len(d.records))
		d.records = append(d.records, r)
		d.addKnown(r.RegionName)
	}
	sort.Ints(d.years)

	for i := range geometries {
		g := geometries[i]
		if _, dup := d.geometry[g.RegionName]; dup {
			continue
		}
		d.geometry[g.RegionName] = &g
		d.geomOrder = append(d.geomOrder, g.RegionName)
		d.addKnown(g.RegionName)
	}

	return d
}

func (d *Dataset) addKnown(name string) {
	if _, ok := d.known[name]; ok {
		return
	}
	d.known[name] = struct{}{}
	d.regionOrder = append(d.regionOrder, name)
}

// Years returns the supported years in ascending order.
func (d *Dataset) Years() []Year {
	return append([]Year(nil), d.years...)
}

func (d *Dataset) HasYear(year Year) bool {
	_, ok := d.index[year]
	return ok
}

// HasRegion reports whether the year has a record for the region.
func (d *Dataset) HasRegion(year Year, name string) bool {
	_, ok := d.index[year][name]
	return ok
}

// IsKnownRegion reports whether the name appears in any year or in the geometry.
func (d *Dataset) IsKnownRegion(name string) bool {
	_, ok := d.known[name]
	return ok
}

// Regions lists every known region name in first-seen order.
func (d *Dataset) Regions() []string {
	return append([]string(nil), d.regionOrder...)
}

func (d *Dataset) Record(year Year, name string) (*RegionRecord, bool) {
	i, ok := d.index[year][name]
	if !ok {
		return nil, false
	}
	return &d.records[i], true
}

// RecordsForYear returns the year's rows in table order.
func (d *Dataset) RecordsForYear(year Year) []*RegionRecord {
	idx := d.byYear[year]
	out := make([]*RegionRecord, 0, len(idx))
	for _, i := range idx {
		out = append(out, &d.records[i])
	}
	return out
}

func (d *Dataset) Geometry(name string) (*GeometryRecord, bool) {
	g, ok := d.geometry[name]
	return g, ok
}

// Geometries returns all geometry records in load order.
func (d *Dataset) Geometries() []*GeometryRecord {
	out := make([]*GeometryRecord, 0, len(d.geomOrder))
	for _, name := range d.geomOrder {
		out = append(out, d.geometry[name])
	}
	return out
}

// Demographics returns the rows matching the (group, type, year) combination in load order.
func (d *Dataset) Demographics(year Year, group string, vt VolunteeringType) []DemographicRecord {
	var out []DemographicRecord
	for _, r := range d.demographics {
		if r.Year == year && r.Group == group && r.VolunteeringType == string(vt) {
			out = append(out, r)
		}
	}
	return out
}

// DemographicGroups lists the distinct breakdown groups in first-seen order.
func (d *Dataset) DemographicGroups() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range d.demographics {
		if _, ok := seen[r.Group]; ok {
			continue
		}
		seen[r.Group] = struct{}{}
		out = append(out, r.Group)
	}
	return out
}
