package http

import (
	"log/slog"
	"net/http"

	"fooddelivery/internal/adapters/in/http/apidocs"
	"fooddelivery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const APIPrefix = "/api/v1"

type RouterConfig struct {
	JWTSecret []byte
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

// NewRouter assembles the echo instance: operational endpoints at the root
// and the authenticated, schema-validated order API under APIPrefix.
func NewRouter(server ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := apidocs.Load()
	if err != nil {
		return nil, err
	}
	if err := apidocs.Register(doc); err != nil {
		return nil, err
	}
	validation, err := validateRequests(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(cfg.Logger))
	e.Use(observe(cfg.Metrics))

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(APIPrefix, Authenticate(cfg.JWTSecret), validation)
	RegisterHandlers(api, server)

	return e, nil
}
