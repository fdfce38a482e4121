package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ougirez/ehrenamt/internal/domain"
	"github.com/ougirez/ehrenamt/internal/pkg/constants"
)

const recordsJSON = `[
	{"region": "Austria", "year": 2016, "formal": 31.0, "informal": 30.1, "median_hours_formal": 3},
	{"region": "Vienna", "year": 2016, "formal": 24.8, "informal": null, "note": "x"},
	{"region": "Austria", "year": 2006, "formal": 27.9}
]`

const geometryJSON = `{
	"type": "FeatureCollection",
	"features": [
		{"type": "Feature", "properties": {"name": "Vienna"},
		 "geometry": {"type": "Polygon", "coordinates": [[[16.18, 48.12], [16.58, 48.12], [16.58, 48.32], [16.18, 48.12]]]}},
		{"type": "Feature", "properties": {"name": "Tyrol"},
		 "geometry": {"type": "MultiPolygon", "coordinates": [
			[[[10.1, 46.6], [12.97, 46.7], [12.8, 47.7], [10.1, 46.6]]],
			[[[12.0, 46.5], [13.2, 46.5], [13.2, 47.0], [12.0, 46.5]]]
		 ]}},
		{"type": "Feature", "properties": {"id": 7},
		 "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}}
	]
}`

const demographicsJSON = `[
	{"year": 2016, "group": "gender", "category": "female", "volunteering_type": "formal", "value": 27.5}
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func newFileStore(t *testing.T) Store {
	dir := t.TempDir()
	return NewFileStore(FileStoreOpts{
		RecordsPath:      writeFile(t, dir, "data.json", recordsJSON),
		GeometryPath:     writeFile(t, dir, "geo.json", geometryJSON),
		DemographicsPath: writeFile(t, dir, "demographics.json", demographicsJSON),
	})
}

func TestFileStore_ListRegionRecords(t *testing.T) {
	got, err := newFileStore(t).ListRegionRecords(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := []domain.RegionRecord{
		{RegionName: "Austria", Year: 2016, Columns: map[string]float64{"formal": 31.0, "informal": 30.1, "median_hours_formal": 3}},
		{RegionName: "Vienna", Year: 2016, Columns: map[string]float64{"formal": 24.8}},
		{RegionName: "Austria", Year: 2006, Columns: map[string]float64{"formal": 27.9}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records (-want +got):\n%s", diff)
	}
}

func TestFileStore_ListRegionRecords_BadRow(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(FileStoreOpts{RecordsPath: writeFile(t, dir, "data.json", `[{"year": 2016}]`)})

	if _, err := s.ListRegionRecords(context.Background()); err == nil {
		t.Error("row without region accepted")
	}
}

func TestFileStore_ListGeometries(t *testing.T) {
	got, err := newFileStore(t).ListGeometries(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d geometries, want 2 (feature without name skipped)", len(got))
	}
	if got[0].RegionName != "Vienna" || len(got[0].Polygons) != 1 {
		t.Errorf("vienna = %+v", got[0])
	}
	if got[1].RegionName != "Tyrol" || len(got[1].Polygons) != 2 {
		t.Errorf("tyrol = %+v", got[1])
	}
	wantOuter := []domain.Point{{Lon: 10.1, Lat: 46.6}, {Lon: 12.97, Lat: 46.7}, {Lon: 12.8, Lat: 47.7}, {Lon: 10.1, Lat: 46.6}}
	if diff := cmp.Diff(wantOuter, got[1].OuterRing()); diff != "" {
		t.Errorf("outer ring (-want +got):\n%s", diff)
	}
}

func TestFileStore_OptionalFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(FileStoreOpts{RecordsPath: writeFile(t, dir, "data.json", recordsJSON)})

	geoms, err := s.ListGeometries(context.Background())
	if err != nil || geoms != nil {
		t.Errorf("geometries = %v, %v", geoms, err)
	}
	demo, err := s.ListDemographics(context.Background())
	if err != nil || demo != nil {
		t.Errorf("demographics = %v, %v", demo, err)
	}
}

func TestLoadDataset(t *testing.T) {
	d, err := LoadDataset(context.Background(), newFileStore(t))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]domain.Year{2006, 2016}, d.Years()); diff != "" {
		t.Errorf("years (-want +got):\n%s", diff)
	}
	if !d.HasRegion(2016, "Vienna") || d.HasRegion(2006, "Vienna") {
		t.Error("vienna year membership wrong")
	}
	if !d.IsKnownRegion("Tyrol") {
		t.Error("tyrol known only through geometry must still be known")
	}
	if diff := cmp.Diff([]string{"gender"}, d.DemographicGroups()); diff != "" {
		t.Errorf("groups (-want +got):\n%s", diff)
	}
}

type stubStore struct {
	records []domain.RegionRecord
	err     error
}

func (s stubStore) ListRegionRecords(context.Context) ([]domain.RegionRecord, error) {
	return s.records, s.err
}

func (s stubStore) ListGeometries(context.Context) ([]domain.GeometryRecord, error) {
	return nil, nil
}

func (s stubStore) ListDemographics(context.Context) ([]domain.DemographicRecord, error) {
	return nil, nil
}

func TestLoadDataset_Errors(t *testing.T) {
	boom := errors.New("boom")
	if _, err := LoadDataset(context.Background(), stubStore{err: boom}); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if _, err := LoadDataset(context.Background(), stubStore{}); !errors.Is(err, constants.ErrEmptyDataset) {
		t.Errorf("err = %v, want ErrEmptyDataset", err)
	}
}
