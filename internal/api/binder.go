package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/ehrenamt/internal/pkg/constants"
)

// Binder decodes JSON bodies with sonic and leaves path, query and other
// body encodings to echo's default binder.
type Binder struct {
	fallback *echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{fallback: new(echo.DefaultBinder)}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.fallback.BindPathParams(c, i); err != nil {
		return err
	}

	req := c.Request()
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return b.fallback.BindQueryParams(c, i)
	}

	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return b.fallback.BindBody(c, i)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return nil
	}
	if err = sonic.Unmarshal(body, i); err != nil {
		return constants.NewCodedError("malformed json: "+err.Error(), http.StatusBadRequest)
	}
	return nil
}
