package main

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ryanuber/go-glob"
	"github.com/sirupsen/logrus"
	"github.com/thebartekbanach/canvas/pkg/config"
	"github.com/thebartekbanach/canvas/pkg/images"
	"github.com/thebartekbanach/canvas/pkg/metrics"
)

const corsMaxAge = 600

func NewServer(cfg *config.Config, logger *logrus.Logger, service images.ImageService) *echo.Echo {
	h := &handlers{images: service, logger: logger}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = h.errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(corsMiddleware(cfg, logger))
	e.Use(requestMetrics)
	if cfg.EnableTracing {
		e.Use(requestLogger(logger))
	}

	e.GET("/health", h.health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/images", h.upload, middleware.BodyLimit(strconv.FormatInt(cfg.FileSizeLimitBytes(), 10)))
	e.GET("/images/:hash", h.render)
	e.GET("/images/:hash/meta", h.describe)

	return e
}

func corsMiddleware(cfg *config.Config, logger *logrus.Logger) echo.MiddlewareFunc {
	corsConfig := middleware.CORSConfig{
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{"*"},
		MaxAge:       corsMaxAge,
	}

	origins := cfg.Origins()
	if origins == nil {
		logger.Warn("allowed_origins is not set, accepting requests from any origin")
		corsConfig.AllowOrigins = []string{"*"}
		return middleware.CORSWithConfig(corsConfig)
	}

	corsConfig.AllowOriginFunc = func(origin string) (bool, error) {
		return originAllowed(origins, origin), nil
	}

	return middleware.CORSWithConfig(corsConfig)
}

func originAllowed(patterns []string, origin string) bool {
	for _, pattern := range patterns {
		if glob.Glob(pattern, origin) {
			return true
		}
	}

	return false
}

func requestMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestsTotal.
			WithLabelValues(route, c.Request().Method, strconv.Itoa(c.Response().Status)).
			Inc()

		return nil
	}
}

func requestLogger(logger *logrus.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency,
				"request_id": v.RequestID,
			}).Info("request")
			return nil
		},
	})
}
