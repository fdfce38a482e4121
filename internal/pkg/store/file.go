package store

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/ougirez/ehrenamt/internal/domain"
	"github.com/ougirez/ehrenamt/internal/pkg/logger"
	geojson "github.com/paulmach/go.geojson"
)

const (
	fieldRegion = "region"
	fieldYear   = "year"
)

type FileStoreOpts struct {
	// RecordsPath is a JSON array of rows: "region", "year" and one
	// numeric field per statistic column.
	RecordsPath string
	// GeometryPath is a GeoJSON FeatureCollection.
	GeometryPath string
	// GeometryKey names the feature property holding the region name.
	GeometryKey string
	// DemographicsPath is optional.
	DemographicsPath string
}

type fileStore struct {
	opts FileStoreOpts
}

func NewFileStore(opts FileStoreOpts) Store {
	if opts.GeometryKey == "" {
		opts.GeometryKey = "name"
	}
	return &fileStore{opts: opts}
}

func (s *fileStore) ListRegionRecords(ctx context.Context) ([]domain.RegionRecord, error) {
	b, err := os.ReadFile(s.opts.RecordsPath)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var rows []map[string]interface{}
	if err = sonic.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("sonic.Unmarshal, path-%s: %w", s.opts.RecordsPath, err)
	}

	out := make([]domain.RegionRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, rec)
	}

	logger.Debugf(ctx, "read %d region records from %s", len(out), s.opts.RecordsPath)
	return out, nil
}

func parseRecord(row map[string]interface{}) (domain.RegionRecord, error) {
	region, ok := row[fieldRegion].(string)
	if !ok || region == "" {
		return domain.RegionRecord{}, fmt.Errorf("missing %q", fieldRegion)
	}
	year, ok := row[fieldYear].(float64)
	if !ok {
		return domain.RegionRecord{}, fmt.Errorf("missing %q for %s", fieldYear, region)
	}

	return domain.RegionRecord{
		RegionName: region,
		Year:       domain.Year(year),
		Columns:    numericColumns(row, fieldRegion, fieldYear),
	}, nil
}

func (s *fileStore) ListGeometries(ctx context.Context) ([]domain.GeometryRecord, error) {
	if s.opts.GeometryPath == "" {
		return nil, nil
	}

	b, err := os.ReadFile(s.opts.GeometryPath)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, fmt.Errorf("geojson.UnmarshalFeatureCollection, path-%s: %w", s.opts.GeometryPath, err)
	}

	out := make([]domain.GeometryRecord, 0, len(fc.Features))
	for i, f := range fc.Features {
		name, err := f.PropertyString(s.opts.GeometryKey)
		if err != nil || name == "" {
			logger.Warnf(ctx, "feature %d has no %q property, skipped", i, s.opts.GeometryKey)
			continue
		}
		out = append(out, domain.GeometryRecord{RegionName: name, Polygons: polygonsOf(f.Geometry)})
	}

	return out, nil
}

func (s *fileStore) ListDemographics(_ context.Context) ([]domain.DemographicRecord, error) {
	if s.opts.DemographicsPath == "" {
		return nil, nil
	}

	b, err := os.ReadFile(s.opts.DemographicsPath)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var out []domain.DemographicRecord
	if err = sonic.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("sonic.Unmarshal, path-%s: %w", s.opts.DemographicsPath, err)
	}
	return out, nil
}
