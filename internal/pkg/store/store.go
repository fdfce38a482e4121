package store

import (
	"context"
	"fmt"

	"github.com/ougirez/ehrenamt/internal/domain"
	"github.com/ougirez/ehrenamt/internal/pkg/constants"
	"github.com/ougirez/ehrenamt/internal/pkg/logger"
	"github.com/ougirez/ehrenamt/internal/pkg/store/xpgx"
	"golang.org/x/sync/errgroup"
)

type Pool = xpgx.Pool

// Store reads the dashboard's reference tables. Region records must come
// back in table order; the ranking tie-break depends on it.
type Store interface {
	ListRegionRecords(ctx context.Context) ([]domain.RegionRecord, error)
	ListGeometries(ctx context.Context) ([]domain.GeometryRecord, error)
	ListDemographics(ctx context.Context) ([]domain.DemographicRecord, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}

// LoadDataset reads all tables concurrently and builds the immutable snapshot.
func LoadDataset(ctx context.Context, s Store) (*domain.Dataset, error) {
	var (
		records      []domain.RegionRecord
		geometries   []domain.GeometryRecord
		demographics []domain.DemographicRecord
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		records, err = s.ListRegionRecords(egCtx)
		if err != nil {
			return fmt.Errorf("ListRegionRecords: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		geometries, err = s.ListGeometries(egCtx)
		if err != nil {
			return fmt.Errorf("ListGeometries: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		demographics, err = s.ListDemographics(egCtx)
		if err != nil {
			return fmt.Errorf("ListDemographics: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, constants.ErrEmptyDataset
	}

	d := domain.NewDataset(records, geometries, demographics)
	for _, year := range d.Years() {
		if !d.HasRegion(year, domain.FallbackRegion) {
			logger.Warnf(ctx, "year %d has no %s record", year, domain.FallbackRegion)
		}
	}
	logger.Infof(ctx, "dataset loaded: %d records, %d geometries, %d demographic rows, years %v",
		len(records), len(geometries), len(demographics), d.Years())

	return d, nil
}
