package service

import (
	"github.com/berfenger/deconz2mqtt/internal/core/domain"
	"github.com/berfenger/deconz2mqtt/internal/core/port"
	"github.com/berfenger/deconz2mqtt/pkg/deconz"

	"go.uber.org/zap"
)

// Discovery derives host entities from gateway sensors: it walks the
// description table, migrates legacy unique IDs and registers one entity per
// applicable (sensor, description) pair.
type Discovery struct {
	registry port.EntityRegistry
	bridge   domain.Device
	logger   *zap.Logger
}

func NewDiscovery(registry port.EntityRegistry, bridge domain.Device, logger *zap.Logger) *Discovery {
	return &Discovery{
		registry: registry,
		bridge:   bridge,
		logger:   logger,
	}
}

// MigrateUniqueID moves an entity registered under the pre-suffix naming
// scheme to the suffixed unique ID. Forward-only and idempotent: if the
// suffixed ID is already registered there is nothing to do, and a missing
// legacy entry just means the entity is new.
func (d *Discovery) MigrateUniqueID(sensorUniqueID string, description domain.BinarySensorDescription) {
	newUniqueID := domain.SuffixedUniqueID(sensorUniqueID, description)
	if _, ok := d.registry.EntityID(domain.ENTITY_DOMAIN_BINARY_SENSOR, domain.ENTITY_PLATFORM, newUniqueID); ok {
		return
	}

	oldUniqueID := sensorUniqueID
	if description.OldUniqueIDSuffix != "" {
		oldUniqueID = domain.LegacyUniqueID(sensorUniqueID, description)
	}

	entityID, ok := d.registry.EntityID(domain.ENTITY_DOMAIN_BINARY_SENSOR, domain.ENTITY_PLATFORM, oldUniqueID)
	if !ok {
		return
	}
	if err := d.registry.UpdateUniqueID(entityID, newUniqueID); err != nil {
		d.logger.Warn("discovery: unique id migration failed",
			zap.String("entity_id", entityID), zap.String("new_unique_id", newUniqueID), zap.Error(err))
		return
	}
	d.logger.Info("discovery: migrated unique id",
		zap.String("entity_id", entityID),
		zap.String("old_unique_id", oldUniqueID),
		zap.String("new_unique_id", newUniqueID))
}

// EntitiesForSensor returns the entities a sensor maps to, registering each
// unique ID. Descriptions whose kind filter does not match or whose value
// function yields nil are skipped silently: an absent field means the aspect
// does not apply to this sensor.
func (d *Discovery) EntitiesForSensor(sensor *deconz.Sensor) []domain.BinarySensorEntity {
	var entities []domain.BinarySensorEntity
	for _, description := range domain.BinarySensorDescriptions {
		if description.Kind != "" && description.Kind != sensor.Type {
			continue
		}
		if description.Value(sensor) == nil {
			continue
		}
		d.MigrateUniqueID(sensor.UniqueID, description)

		entity := domain.NewBinarySensorEntity(sensor, domain.SensorDevice(sensor, d.bridge), description)
		entityID := d.registry.Register(domain.ENTITY_DOMAIN_BINARY_SENSOR, domain.ENTITY_PLATFORM,
			entity.UniqueID(), entity.ObjectID())
		d.logger.Debug("discovery: entity",
			zap.String("sensor", sensor.ID),
			zap.String("key", description.Key),
			zap.String("entity_id", entityID))
		entities = append(entities, entity)
	}
	return entities
}
