package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/ehrenamt/internal/domain"
	"github.com/ougirez/ehrenamt/internal/domain/dto"
	"github.com/ougirez/ehrenamt/internal/service/metric"
)

func (c *Controller) GetMeta(ctx echo.Context) error {
	data := c.service.Dataset()

	resp := dto.MetaResponse{
		Years:             data.Years(),
		Regions:           data.Regions(),
		DefaultRegion:     domain.FallbackRegion,
		DemographicGroups: data.DemographicGroups(),
	}
	for _, vt := range domain.VolunteeringTypes {
		resp.VolunteeringTypes = append(resp.VolunteeringTypes, string(vt))
	}
	for _, kind := range domain.StatisticKinds {
		resp.Statistics = append(resp.Statistics, string(kind))
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) ResolveColumn(ctx echo.Context) error {
	var req dto.FiltersRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	f := toFilters(req)

	return ctx.JSON(http.StatusOK, dto.ResolveResponse{
		VolunteeringType: string(f.VolunteeringType),
		Statistic:        string(f.Statistic),
		Column:           metric.Resolve(f.VolunteeringType, f.Statistic),
	})
}
