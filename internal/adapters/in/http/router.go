package http

import (
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"foodorder/internal/metrics"
)

// RouterOptions holds the optional parts of the router.
type RouterOptions struct {
	// Metrics records request counts and durations when set.
	Metrics *metrics.Metrics
	// Gatherer is served at /metrics when set.
	Gatherer prometheus.Gatherer
}

// NewRouter builds the echo instance serving the API, the OpenAPI document, the
// swagger UI, health and metrics endpoints.
func NewRouter(server ServerInterface, doc *openapi3.T, opts RouterOptions) (*echo.Echo, error) {
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	specJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("render openapi spec: %w", err)
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, fmt.Errorf("register swagger doc: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler

	if opts.Metrics != nil {
		e.Use(opts.Metrics.Middleware())
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, specJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if opts.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	RegisterHandlers(e, server)

	return e, nil
}
