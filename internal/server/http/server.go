package http

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tia-rosa/pos/internal/config"
	"github.com/tia-rosa/pos/internal/database"
	"github.com/tia-rosa/pos/internal/observability"
	"github.com/tia-rosa/pos/pkg/fault"
)

// Module exposes the HTTP server lifecycle to Fx.
var Module = fx.Module("http_server",
	fx.Provide(NewEcho),
	fx.Invoke(Run),
)

// NewEcho configures the Echo router: fault-aware error rendering, health
// and readiness probes, and the metrics/tracing hooks when enabled.
func NewEcho(cfg config.Config, conns *database.Connections, obs *observability.Manager, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	if obs != nil && obs.TracingEnabled() {
		e.Use(otelecho.Middleware(cfg.Observability.ServiceName))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": cfg.Observability.ServiceName,
		})
	})

	// Readiness covers the one hard dependency: the order store.
	e.GET("/ready", func(c echo.Context) error {
		if err := conns.Writer.PingContext(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"reason": "database unreachable",
			})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	})

	if obs != nil && obs.MetricsEnabled() && obs.MetricsHandler() != nil {
		e.GET(cfg.Observability.PrometheusPath, echo.WrapHandler(obs.MetricsHandler()))
	}

	return e
}

// errorHandler renders uncaught errors through the fault taxonomy so a
// store failure surfacing here still produces the API's error shape.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if he, ok := err.(*echo.HTTPError); ok {
			c.Echo().DefaultHTTPErrorHandler(he, c)
			return
		}

		appErr := fault.From(err)
		logger.Error("http request failed",
			zap.String("path", c.Path()),
			zap.String("kind", string(appErr.Kind())),
			zap.Error(err),
		)
		_ = c.JSON(appErr.StatusCode(), map[string]string{
			"kind":    string(appErr.Kind()),
			"message": appErr.Message(),
		})
	}
}

// Run starts the HTTP server and ties it to the Fx lifecycle.
func Run(lc fx.Lifecycle, cfg config.Config, e *echo.Echo, logger *zap.Logger) {
	addr := net.JoinHostPort(cfg.HTTP.Host, strconv.Itoa(cfg.HTTP.Port))

	server := &http.Server{
		Addr:              addr,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting HTTP server",
				zap.String("addr", addr),
				zap.String("service", cfg.Observability.ServiceName),
			)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
