package api

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/ehrenamt/internal/pkg/constants"
	"github.com/ougirez/ehrenamt/internal/pkg/utils"
)

// SessionMiddleware resolves the session from the session cookie or a
// bearer token and stores its id under constants.CtxKeySessionID.
func (svc *APIService) SessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var raw string
		if cookie, err := ctx.Cookie(constants.CookieKeySessionToken); err == nil {
			raw = cookie.Value
		} else if auth := ctx.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
			raw = strings.TrimPrefix(auth, "Bearer ")
		}
		if raw == "" {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseSessionToken(raw, svc.opts.Secret)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeySessionID, token.SessionID)
		return next(ctx)
	}
}
