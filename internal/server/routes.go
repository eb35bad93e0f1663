package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/berfenger/deconz2mqtt/internal/core/domain"
	"github.com/berfenger/deconz2mqtt/pkg/deconz"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	if s.httpLog {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())

	e.GET("/healthcheck", s.HealthCheckHandler)
	e.GET("/sensors", s.ListSensorsHandler)
	e.POST("/sensors", s.AddSensorHandler)
	e.PUT("/sensors/:id/state", s.UpdateSensorStateHandler)

	return e
}

func (s *Server) HealthCheckHandler(c echo.Context) error {
	res, err := s.rootContext.RequestFuture(s.masterActor, domain.ActorHealthRequest{}, 10*time.Second).Result()
	if err != nil {
		return c.String(http.StatusServiceUnavailable, "health_check: FAIL")
	}
	if response, ok := res.(domain.ActorHealthResponse); ok && response.Healthy {
		return c.String(http.StatusOK, "health_check: OK")
	}
	return c.String(http.StatusServiceUnavailable, "health_check: FAIL")
}

// ListSensorsHandler returns the stored sensors keyed by resource ID,
// mirroring the deCONZ REST /sensors document.
func (s *Server) ListSensorsHandler(c echo.Context) error {
	res, err := s.rootContext.RequestFuture(s.masterActor, domain.ListSensorsRequest{}, 10*time.Second).Result()
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	response, ok := res.(domain.ListSensorsResponse)
	if !ok || response.HasResponseError() {
		return c.NoContent(http.StatusInternalServerError)
	}
	sensors := map[string]*deconz.Sensor{}
	for _, sensor := range response.Sensors {
		sensors[sensor.ID] = sensor
	}
	return c.JSON(http.StatusOK, sensors)
}

func (s *Server) AddSensorHandler(c echo.Context) error {
	var sensor deconz.Sensor
	if err := c.Bind(&sensor); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid sensor payload"})
	}
	if sensor.Type == "" || sensor.UniqueID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "type and uniqueid are required"})
	}
	res, err := s.rootContext.RequestFuture(s.masterActor, domain.AddSensorRequest{Sensor: &sensor}, 10*time.Second).Result()
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	response, ok := res.(domain.AddSensorResponse)
	if !ok || response.HasResponseError() {
		return c.NoContent(http.StatusInternalServerError)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"id":       response.SensorId,
		"entities": response.EntityUniqueIds,
	})
}

func (s *Server) UpdateSensorStateHandler(c echo.Context) error {
	var patch deconz.SensorState
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid state payload"})
	}
	res, err := s.rootContext.RequestFuture(s.masterActor, domain.UpdateSensorStateRequest{
		SensorId: c.Param("id"),
		State:    patch,
	}, 10*time.Second).Result()
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	response, ok := res.(domain.UpdateSensorStateResponse)
	if !ok {
		return c.NoContent(http.StatusInternalServerError)
	}
	if response.HasResponseError() {
		if errors.Is(response.GetResponseError(), deconz.ErrSensorNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "sensor not found"})
		}
		return c.NoContent(http.StatusInternalServerError)
	}
	return c.NoContent(http.StatusOK)
}
