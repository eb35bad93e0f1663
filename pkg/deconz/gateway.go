package deconz

import (
	"errors"
	"strconv"

	"go.uber.org/zap"
)

var ErrSensorNotFound = errors.New("deconz: sensor not found")

// Gateway is the keyed collection of sensors known to the bridge, with a
// callback subscription for newly added sensors and state updates.
//
// Gateway is not safe for concurrent use. The owning actor serialises all
// access, so callbacks always run on its dispatch goroutine.
type Gateway struct {
	sensors map[string]*Sensor
	nextID  int

	addedCallbacks   []func(sensor *Sensor)
	updatedCallbacks []func(sensor *Sensor)

	logger *zap.Logger
}

func NewGateway(logger *zap.Logger) *Gateway {
	return &Gateway{
		sensors: map[string]*Sensor{},
		nextID:  1,
		logger:  logger,
	}
}

// SubscribeSensorAdded registers fn to run once for every sensor added after
// this call.
func (g *Gateway) SubscribeSensorAdded(fn func(sensor *Sensor)) {
	g.addedCallbacks = append(g.addedCallbacks, fn)
}

// SubscribeSensorUpdated registers fn to run whenever a sensor state changes.
func (g *Gateway) SubscribeSensorUpdated(fn func(sensor *Sensor)) {
	g.updatedCallbacks = append(g.updatedCallbacks, fn)
}

func (g *Gateway) Sensor(id string) (*Sensor, bool) {
	s, ok := g.sensors[id]
	return s, ok
}

// Sensors returns the stored sensors keyed by resource ID.
func (g *Gateway) Sensors() map[string]*Sensor {
	return g.sensors
}

// AddSensor stores a sensor and fires the added callbacks. A sensor without
// an ID gets the next free numeric key, matching the deCONZ resource scheme.
// Re-adding an existing ID replaces the record but does not fire callbacks
// again, so discovery stays one-shot per sensor.
func (g *Gateway) AddSensor(sensor *Sensor) *Sensor {
	if sensor.ID == "" {
		sensor.ID = strconv.Itoa(g.nextID)
	}
	if n, err := strconv.Atoi(sensor.ID); err == nil && n >= g.nextID {
		g.nextID = n + 1
	}
	_, existed := g.sensors[sensor.ID]
	g.sensors[sensor.ID] = sensor
	if existed {
		g.logger.Debug("gateway: sensor replaced", zap.String("id", sensor.ID))
		return sensor
	}
	g.logger.Debug("gateway: sensor added",
		zap.String("id", sensor.ID), zap.String("type", string(sensor.Type)), zap.String("uniqueid", sensor.UniqueID))
	for _, fn := range g.addedCallbacks {
		fn(sensor)
	}
	return sensor
}

// ApplyState merges a state patch into a stored sensor and fires the updated
// callbacks.
func (g *Gateway) ApplyState(id string, patch SensorState) (*Sensor, error) {
	sensor, ok := g.sensors[id]
	if !ok {
		return nil, ErrSensorNotFound
	}
	sensor.State.Merge(patch)
	g.logger.Debug("gateway: sensor state updated", zap.String("id", id))
	for _, fn := range g.updatedCallbacks {
		fn(sensor)
	}
	return sensor, nil
}
