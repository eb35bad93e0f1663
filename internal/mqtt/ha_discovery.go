package mqtt

import (
	"fmt"

	"github.com/berfenger/deconz2mqtt/internal/core/domain"
)

type HADiscoveryConfig struct {
	Device              HADiscoveryDevice `json:"device"`
	StateTopic          string            `json:"state_topic"`
	JsonAttributesTopic string            `json:"json_attributes_topic,omitempty"`
	DeviceClass         string            `json:"device_class,omitempty"`
	AvTopic             string            `json:"availability_topic,omitempty"`
	EntityCategory      string            `json:"entity_category,omitempty"`
	Name                string            `json:"name"`
	UniqueId            string            `json:"unique_id"`
	ObjectId            string            `json:"object_id,omitempty"`
	Platform            string            `json:"platform"`
	PayloadOn           string            `json:"payload_on,omitempty"`
	PayloadOff          string            `json:"payload_off,omitempty"`
}

type HADiscoveryDevice struct {
	Id           []string `json:"identifiers"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Version      string   `json:"sw_version,omitempty"`
	Model        string   `json:"model,omitempty"`
	Name         string   `json:"name,omitempty"`
	ViaDevice    string   `json:"via_device,omitempty"`
}

func HADiscoveryBinarySensorTopic(discoveryTopic string, entity domain.BinarySensorEntity) string {
	return fmt.Sprintf("%s/binary_sensor/%s/%s/config", discoveryTopic, entity.HADevice().Id, entity.Description.Key)
}

func HADiscoveryBridgeSensorTopic(discoveryTopic string, bridge domain.Device) string {
	return fmt.Sprintf("%s/binary_sensor/%s/bridge/config", discoveryTopic, bridge.Id)
}

// BinarySensorToHADiscoveryMessage builds the retained discovery config for
// one entity. Attribute-flagged descriptions also announce the attributes
// topic so the host platform picks up the auxiliary fields.
func BinarySensorToHADiscoveryMessage(client *MQTTClient, entity domain.BinarySensorEntity) HADiscoveryConfig {
	disConfig := HADiscoveryConfig{
		Device:         device(entity.HADevice()),
		StateTopic:     client.BinarySensorStateTopic(entity.ObjectID()),
		DeviceClass:    entity.Description.DeviceClass,
		AvTopic:        client.BridgeStateTopic(),
		EntityCategory: entity.Description.EntityCategory,
		Name:           entity.Name(),
		UniqueId:       entity.UniqueID(),
		ObjectId:       entity.ObjectID(),
		Platform:       "mqtt",
		PayloadOn:      MQTT_PAYLOAD_ON,
		PayloadOff:     MQTT_PAYLOAD_OFF,
	}
	if entity.Description.ExtraAttributes {
		disConfig.JsonAttributesTopic = client.BinarySensorAttributesTopic(entity.ObjectID())
	}
	return disConfig
}

// BridgeSensorToHADiscoveryMessage announces the bridge connectivity sensor.
func BridgeSensorToHADiscoveryMessage(client *MQTTClient, bridge domain.Device) HADiscoveryConfig {
	return HADiscoveryConfig{
		Device:         device(bridge),
		StateTopic:     client.BridgeStateTopic(),
		DeviceClass:    domain.DEVICE_CLASS_CONNECTIVITY,
		EntityCategory: domain.ENTITY_CLASS_DIAGNOSTIC,
		Name:           "Connection state",
		UniqueId:       fmt.Sprintf("uid_%s_bridge", bridge.Id),
		Platform:       "mqtt",
		PayloadOn:      MQTT_PAYLOAD_ONLINE,
		PayloadOff:     MQTT_PAYLOAD_OFFLINE,
	}
}

func device(d domain.Device) HADiscoveryDevice {
	return HADiscoveryDevice{
		Id:           []string{d.Id},
		Manufacturer: d.Manufacturer,
		Version:      d.Version,
		Model:        d.Model,
		Name:         d.Name,
		ViaDevice:    d.ViaDevice,
	}
}
