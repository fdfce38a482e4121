package controller

import (
	"time"

	"github.com/ougirez/ehrenamt/internal/domain"
	"github.com/ougirez/ehrenamt/internal/domain/dto"
	"github.com/ougirez/ehrenamt/internal/service/dashboard"
)

type Options struct {
	Secret     string
	SessionTTL time.Duration
}

type Controller struct {
	service *dashboard.Service
	opts    Options
}

func NewController(service *dashboard.Service, opts Options) *Controller {
	return &Controller{service: service, opts: opts}
}

func toFilters(req dto.FiltersRequest) domain.Filters {
	f := domain.Filters{
		VolunteeringType: domain.VolunteeringType(req.VolunteeringType),
		Statistic:        domain.StatisticKind(req.Statistic),
		Year:             req.Year,
		Demographic:      req.Demographic,
	}
	if f.VolunteeringType == "" {
		f.VolunteeringType = domain.VolunteeringAny
	}
	if f.Statistic == "" {
		f.Statistic = domain.StatisticPercentage
	}
	return f
}
