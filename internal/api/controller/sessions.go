package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/ehrenamt/internal/domain/dto"
	"github.com/ougirez/ehrenamt/internal/pkg/constants"
	"github.com/ougirez/ehrenamt/internal/pkg/utils"
)

func (c *Controller) CreateSession(ctx echo.Context) error {
	var req dto.FiltersRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	id, views, err := c.service.NewSession(ctx.Request().Context(), toFilters(req))
	if err != nil {
		return err
	}

	token, err := utils.GenerateSessionToken(id, c.opts.Secret, c.opts.SessionTTL)
	if err != nil {
		return fmt.Errorf("GenerateSessionToken: %w", err)
	}

	cookie := &http.Cookie{
		Name:     constants.CookieKeySessionToken,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if c.opts.SessionTTL > 0 {
		cookie.Expires = time.Now().Add(c.opts.SessionTTL)
	}
	ctx.SetCookie(cookie)

	return ctx.JSON(http.StatusCreated, dto.SessionResponse{SessionID: id, Token: token, Views: views})
}

func (c *Controller) GetState(ctx echo.Context) error {
	sessionID, _ := ctx.Get(constants.CtxKeySessionID).(string)

	region, err := c.service.Selected(ctx.Request().Context(), sessionID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.StateResponse{SelectedRegion: region})
}
