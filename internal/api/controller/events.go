package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/ehrenamt/internal/domain/dto"
	"github.com/ougirez/ehrenamt/internal/pkg/constants"
	"github.com/ougirez/ehrenamt/internal/service/dashboard"
	"github.com/ougirez/ehrenamt/internal/service/selection"
)

func toEvent(req dto.EventRequest) (selection.Event, error) {
	switch req.Trigger {
	case selection.Reset{}.Trigger():
		return selection.Reset{}, nil
	case selection.RegionClicked{}.Trigger():
		return selection.RegionClicked{Region: req.Region}, nil
	case selection.FilterChanged{}.Trigger():
		return selection.FilterChanged{}, nil
	}
	return nil, constants.ErrBadTrigger
}

// PostEvent runs one update cycle and returns every view.
func (c *Controller) PostEvent(ctx echo.Context) error {
	var req dto.EventRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	ev, err := toEvent(req)
	if err != nil {
		return err
	}

	sessionID, _ := ctx.Get(constants.CtxKeySessionID).(string)
	views, err := c.service.Dispatch(ctx.Request().Context(), sessionID, dashboard.Cycle{
		Event:   ev,
		Filters: toFilters(req.FiltersRequest),
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, views)
}
