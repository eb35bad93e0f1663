package mqtt

import (
	"testing"

	"github.com/berfenger/deconz2mqtt/internal/config"
	"github.com/berfenger/deconz2mqtt/internal/core/domain"
	"github.com/berfenger/deconz2mqtt/pkg/deconz"

	"github.com/stretchr/testify/assert"
)

func testClient() *MQTTClient {
	cfg := &config.Config{
		MQTT: config.MQTTConfig{
			Host:      "localhost",
			Port:      1883,
			BaseTopic: "deconz2mqtt",
		},
	}
	return CreateMQTTClient(cfg, OptsFromConfig(cfg), nil, nil)
}

func TestBinarySensorTopics(t *testing.T) {

	assert := assert.New(t)

	client := testClient()

	assert.Equal("deconz2mqtt/binary_sensor/dev_presence/state", client.BinarySensorStateTopic("dev_presence"))
	assert.Equal("deconz2mqtt/binary_sensor/dev_presence/attributes", client.BinarySensorAttributesTopic("dev_presence"))
	assert.Equal("deconz2mqtt/bridge/state", client.BridgeStateTopic())
}

func TestBinarySensorDiscoveryMessage(t *testing.T) {

	assert := assert.New(t)

	client := testClient()
	bridge := domain.BridgeDevice("deconz2mqtt")
	sensor := deconz.TestPresenceSensor()

	var presence domain.BinarySensorDescription
	for _, d := range domain.BinarySensorDescriptions {
		if d.Key == "presence" {
			presence = d
		}
	}
	entity := domain.NewBinarySensorEntity(sensor, domain.SensorDevice(sensor, bridge), presence)

	msg := BinarySensorToHADiscoveryMessage(client, entity)

	assert.Equal("Hall motion", msg.Name)
	assert.Equal(domain.DEVICE_CLASS_MOTION, msg.DeviceClass)
	assert.Equal(sensor.UniqueID+"-presence", msg.UniqueId)
	assert.Equal(client.BinarySensorStateTopic(entity.ObjectID()), msg.StateTopic)
	assert.Equal(client.BinarySensorAttributesTopic(entity.ObjectID()), msg.JsonAttributesTopic,
		"attribute-flagged entry announces attributes topic")
	assert.Equal(client.BridgeStateTopic(), msg.AvTopic)
	assert.Equal(MQTT_PAYLOAD_ON, msg.PayloadOn)
	assert.Equal(bridge.Id, msg.Device.ViaDevice)
}

func TestDiagnosticDiscoveryMessageHasNoAttributesTopic(t *testing.T) {

	assert := assert.New(t)

	client := testClient()
	bridge := domain.BridgeDevice("deconz2mqtt")
	sensor := deconz.TestVibrationSensor()

	var tampered domain.BinarySensorDescription
	for _, d := range domain.BinarySensorDescriptions {
		if d.Key == "tampered" {
			tampered = d
		}
	}
	entity := domain.NewBinarySensorEntity(sensor, domain.SensorDevice(sensor, bridge), tampered)

	msg := BinarySensorToHADiscoveryMessage(client, entity)

	assert.Empty(msg.JsonAttributesTopic)
	assert.Equal(domain.ENTITY_CLASS_DIAGNOSTIC, msg.EntityCategory)
	assert.Equal("Mailbox Tampered", msg.Name)
}
