package domain

import (
	"testing"

	"github.com/berfenger/deconz2mqtt/pkg/deconz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptionByKey(t *testing.T, key string) BinarySensorDescription {
	t.Helper()
	for _, d := range BinarySensorDescriptions {
		if d.Key == key {
			return d
		}
	}
	t.Fatalf("no description with key %s", key)
	return BinarySensorDescription{}
}

func TestEntityUniqueIDSuffixing(t *testing.T) {

	assert := assert.New(t)

	entity := NewBinarySensorEntity(deconz.TestPresenceSensor(), Device{}, descriptionByKey(t, "presence"))

	assert.Equal("00:15:8d:00:02:b4:6c:e5-01-0406-presence", entity.UniqueID())
	assert.Equal("00158d0002b46ce5_01_0406_presence", entity.ObjectID(), "topic-safe object id")
	assert.Equal("Hall motion", entity.Name())
}

func TestEntityNameSuffix(t *testing.T) {

	assert := assert.New(t)

	entity := NewBinarySensorEntity(deconz.TestFireSensor(), Device{}, descriptionByKey(t, "in_test_mode"))
	assert.Equal("Kitchen smoke Test Mode", entity.Name())
}

func TestEntityIsOnReadsLiveSensor(t *testing.T) {

	assert := assert.New(t)

	sensor := deconz.TestPresenceSensor()
	entity := NewBinarySensorEntity(sensor, Device{}, descriptionByKey(t, "presence"))

	require.NotNil(t, entity.IsOn())
	assert.False(*entity.IsOn())

	sensor.State.Merge(deconz.SensorState{Presence: deconz.Bool(true)})
	assert.True(*entity.IsOn(), "wrapper reflects gateway state")
}

func TestPresenceAttributesDarkConditional(t *testing.T) {

	assert := assert.New(t)

	sensor := deconz.TestPresenceSensor()
	entity := NewBinarySensorEntity(sensor, Device{}, descriptionByKey(t, "presence"))

	attrs := entity.ExtraStateAttributes()
	assert.Equal(true, attrs[ATTR_DARK])
	assert.Equal(true, attrs[ATTR_ON])
	assert.Equal(26.0, attrs[ATTR_TEMPERATURE])

	sensor.State.Dark = nil
	attrs = entity.ExtraStateAttributes()
	assert.NotContains(attrs, ATTR_DARK, "nil ambient-light field omits the attribute")
}

func TestVibrationAttributesAlwaysPresent(t *testing.T) {

	assert := assert.New(t)

	sensor := deconz.TestVibrationSensor()
	sensor.State.Orientation = nil
	sensor.State.TiltAngle = nil
	sensor.State.VibrationStrength = nil

	entity := NewBinarySensorEntity(sensor, Device{}, descriptionByKey(t, "vibration"))
	attrs := entity.ExtraStateAttributes()

	assert.Contains(attrs, ATTR_ORIENTATION)
	assert.Contains(attrs, ATTR_TILTANGLE)
	assert.Contains(attrs, ATTR_VIBRATIONSTRENGTH)
}

func TestDiagnosticEntitiesHaveNoAttributes(t *testing.T) {

	assert := assert.New(t)

	entity := NewBinarySensorEntity(deconz.TestVibrationSensor(), Device{}, descriptionByKey(t, "tampered"))
	assert.Empty(entity.ExtraStateAttributes())
}

func TestDescriptionValueFunctions(t *testing.T) {

	assert := assert.New(t)

	fire := deconz.TestFireSensor()
	assert.NotNil(descriptionByKey(t, "fire").Value(fire))
	assert.NotNil(descriptionByKey(t, "in_test_mode").Value(fire))
	assert.Nil(descriptionByKey(t, "tampered").Value(fire), "field absent on this sensor")

	vib := deconz.TestVibrationSensor()
	assert.NotNil(descriptionByKey(t, "tampered").Value(vib), "tamper applies across types")
	assert.NotNil(descriptionByKey(t, "low_battery").Value(vib))
}
