package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/ehrenamt/internal/api/controller"
	"github.com/ougirez/ehrenamt/internal/pkg/logger"
	"github.com/ougirez/ehrenamt/internal/pkg/metrics"
	"github.com/ougirez/ehrenamt/internal/service/dashboard"
)

type Options struct {
	Secret      string
	SessionTTL  time.Duration
	CORSOrigins []string
}

type APIService struct {
	router           *echo.Echo
	dashboardService *dashboard.Service
	opts             Options
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(dashboardService *dashboard.Service, opts Options) (*APIService, error) {
	svc := &APIService{router: echo.New(), dashboardService: dashboardService, opts: opts}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.WARN)
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     opts.CORSOrigins,
		AllowMethods:     []string{echo.GET, echo.POST},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	svc.router.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.dashboardService, controller.Options{
		Secret:     opts.Secret,
		SessionTTL: opts.SessionTTL,
	})

	api.GET("/meta", cntrl.GetMeta)
	api.GET("/columns/resolve", cntrl.ResolveColumn)
	api.POST("/sessions", cntrl.CreateSession)

	board := api.Group("/dashboard", svc.SessionMiddleware)
	board.POST("/events", cntrl.PostEvent)
	board.GET("/state", cntrl.GetState)

	return svc, nil
}
