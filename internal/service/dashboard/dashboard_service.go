package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ougirez/ehrenamt/internal/domain"
	"github.com/ougirez/ehrenamt/internal/domain/dto"
	"github.com/ougirez/ehrenamt/internal/pkg/constants"
	"github.com/ougirez/ehrenamt/internal/pkg/logger"
	"github.com/ougirez/ehrenamt/internal/pkg/metrics"
	"github.com/ougirez/ehrenamt/internal/pkg/session"
	"github.com/ougirez/ehrenamt/internal/service/selection"
	"github.com/ougirez/ehrenamt/internal/service/views"
)

// Cycle is one update cycle: what triggered it and the filter values
// current at that moment.
type Cycle struct {
	Event   selection.Event
	Filters domain.Filters
}

type Service struct {
	data     *domain.Dataset
	sessions session.Store
	locks    *keyedMutex
}

func NewService(data *domain.Dataset, sessions session.Store) *Service {
	return &Service{data: data, sessions: sessions, locks: newKeyedMutex()}
}

func (s *Service) Dataset() *domain.Dataset {
	return s.data
}

// NewSession starts a session selecting the country aggregate and returns
// its first set of views.
func (s *Service) NewSession(ctx context.Context, f domain.Filters) (string, *dto.Views, error) {
	if !s.data.HasYear(f.Year) {
		return "", nil, constants.ErrUnsupportedYear
	}

	id := uuid.NewString()
	st := selection.Initial()
	if err := s.sessions.Create(ctx, id, st.Region); err != nil {
		return "", nil, fmt.Errorf("sessions.Create: %w", err)
	}
	metrics.SessionsCreatedTotal.Inc()

	ctx = logger.With(ctx, constants.CtxKeySessionID, id)
	logger.Infof(ctx, "session created")

	v, rep := views.Build(s.data, st.Region, f)
	s.report(ctx, rep)
	return id, v, nil
}

// Selected returns the session's current region.
func (s *Service) Selected(ctx context.Context, sessionID string) (string, error) {
	return s.sessions.Get(ctx, sessionID)
}

// Dispatch runs one update cycle for the session: the selection is
// advanced by the precedence rules and written back before any view is
// built. Cycles of the same session never interleave.
func (s *Service) Dispatch(ctx context.Context, sessionID string, c Cycle) (*dto.Views, error) {
	if c.Event == nil {
		return nil, constants.ErrBadTrigger
	}
	if !s.data.HasYear(c.Filters.Year) {
		return nil, constants.ErrUnsupportedYear
	}

	start := time.Now()
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	ctx = logger.With(ctx, constants.CtxKeySessionID, sessionID)

	region, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("sessions.Get: %w", err)
	}

	cur := selection.State{Region: region}
	next, rule := selection.Next(cur, c.Event, c.Filters.Year, s.data)
	if err = s.sessions.Put(ctx, sessionID, next.Region); err != nil {
		return nil, fmt.Errorf("sessions.Put: %w", err)
	}

	if rule == selection.RuleFallback && cur.Region != domain.FallbackRegion {
		metrics.SelectionFallbacksTotal.WithLabelValues("selection").Inc()
		logger.Warnf(ctx, "region %q absent in %d, selection reset to %s", cur.Region, c.Filters.Year, next.Region)
	}
	logger.Debugf(ctx, "cycle %s: %q -> %q by %s", c.Event.Trigger(), cur.Region, next.Region, rule)

	v, rep := views.Build(s.data, next.Region, c.Filters)
	s.report(ctx, rep)

	metrics.CyclesTotal.WithLabelValues(c.Event.Trigger()).Inc()
	metrics.CycleDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000)

	return v, nil
}

func (s *Service) report(ctx context.Context, rep views.Report) {
	if rep.DisplayFallback {
		metrics.SelectionFallbacksTotal.WithLabelValues("display").Inc()
		logger.Warnf(ctx, "selected region has no record for the year, displaying %s", domain.FallbackRegion)
	}
	if rep.ViewportFallback {
		metrics.ViewportFallbacksTotal.Inc()
		logger.Warnf(ctx, "no geometry for the displayed region, fitting all regions")
	}
	for _, view := range rep.EmptyViews {
		metrics.EmptyViewsTotal.WithLabelValues(view).Inc()
	}
}
