package store

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/ougirez/ehrenamt/internal/domain"
	"github.com/ougirez/ehrenamt/internal/pkg/logger"
	"github.com/ougirez/ehrenamt/internal/pkg/store/xpgx"
	geojson "github.com/paulmach/go.geojson"
)

var (
	regionStatsColumns      = []string{"region_name", "year", "columns"}
	regionGeometryColumns   = []string{"region_name", "geometry"}
	demographicStatsColumns = []string{"year", "group_name", "category", "volunteering_type", "value"}
)

// regionStatsRow holds the jsonb cells undecoded so gaps stay gaps.
type regionStatsRow struct {
	RegionName string                 `db:"region_name"`
	Year       domain.Year            `db:"year"`
	Columns    map[string]interface{} `db:"columns"`
}

func (r regionStatsRow) toDomain() domain.RegionRecord {
	return domain.RegionRecord{
		RegionName: r.RegionName,
		Year:       r.Year,
		Columns:    numericColumns(r.Columns),
	}
}

type geometryRow struct {
	RegionName string `db:"region_name"`
	Geometry   []byte `db:"geometry"`
}

// Connect opens the pool and waits for the database to answer.
func Connect(ctx context.Context, dsn string) (Pool, error) {
	pool, err := xpgx.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	err = backoff.Retry(
		func() error {
			pingErr := pool.Ping(ctx)
			if pingErr != nil {
				logger.Warnf(ctx, "postgres ping: %s", pingErr.Error())
			}
			return pingErr
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 8),
			ctx,
		),
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return pool, nil
}

func (s *store) ListRegionRecords(ctx context.Context) ([]domain.RegionRecord, error) {
	query := builder().Select(regionStatsColumns...).
		From(tableRegionStats).
		OrderBy("id")

	rows, err := xpgx.Selectx[regionStatsRow](ctx, s.pool, query)
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	out := make([]domain.RegionRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}

	return out, nil
}

func (s *store) ListGeometries(ctx context.Context) ([]domain.GeometryRecord, error) {
	query := builder().Select(regionGeometryColumns...).
		From(tableRegionGeometries).
		OrderBy("region_name")

	rows, err := xpgx.Selectx[geometryRow](ctx, s.pool, query)
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	out := make([]domain.GeometryRecord, 0, len(rows))
	for _, r := range rows {
		g, err := geojson.UnmarshalGeometry(r.Geometry)
		if err != nil {
			return nil, fmt.Errorf("geojson.UnmarshalGeometry, region_name-%s: %w", r.RegionName, err)
		}
		out = append(out, domain.GeometryRecord{RegionName: r.RegionName, Polygons: polygonsOf(g)})
	}

	return out, nil
}

func (s *store) ListDemographics(ctx context.Context) ([]domain.DemographicRecord, error) {
	query := builder().Select(demographicStatsColumns...).
		From(tableDemographicStats).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.DemographicRecord](ctx, s.pool, query)
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}
