package deconz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGatewayAddFiresCallbackOnce(t *testing.T) {

	assert := assert.New(t)

	gw := NewGateway(zap.NewNop())

	var added []string
	gw.SubscribeSensorAdded(func(sensor *Sensor) {
		added = append(added, sensor.ID)
	})

	gw.AddSensor(TestPresenceSensor())
	// same resource ID, must not re-fire discovery
	gw.AddSensor(TestPresenceSensor())

	assert.Equal([]string{"1"}, added, "added callback fired once")
	assert.Len(gw.Sensors(), 1)
}

func TestGatewayAssignsNextFreeID(t *testing.T) {

	assert := assert.New(t)

	gw := NewGateway(zap.NewNop())
	gw.AddSensor(TestWaterSensor()) // ID 4

	anon := TestFireSensor()
	anon.ID = ""
	gw.AddSensor(anon)

	assert.Equal("5", anon.ID, "next free numeric key")
}

func TestGatewayApplyState(t *testing.T) {

	assert := assert.New(t)

	gw := NewGateway(zap.NewNop())
	gw.AddSensor(TestPresenceSensor())

	var updated int
	gw.SubscribeSensorUpdated(func(sensor *Sensor) {
		updated++
	})

	sensor, err := gw.ApplyState("1", SensorState{Presence: Bool(true)})
	assert.NoError(err)
	assert.True(*sensor.State.Presence)
	assert.Equal(1, updated, "updated callback fired")

	_, err = gw.ApplyState("99", SensorState{})
	assert.ErrorIs(err, ErrSensorNotFound)
}
