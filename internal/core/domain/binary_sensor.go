package domain

import (
	"regexp"
	"strings"

	"github.com/berfenger/deconz2mqtt/pkg/deconz"
)

const (
	DEVICE_CLASS_BATTERY         = "battery"
	DEVICE_CLASS_CO              = "carbon_monoxide"
	DEVICE_CLASS_CONNECTIVITY    = "connectivity"
	DEVICE_CLASS_MOISTURE        = "moisture"
	DEVICE_CLASS_MOTION          = "motion"
	DEVICE_CLASS_OPENING         = "opening"
	DEVICE_CLASS_SAFETY          = "safety"
	DEVICE_CLASS_SMOKE           = "smoke"
	DEVICE_CLASS_TAMPER          = "tamper"
	DEVICE_CLASS_VIBRATION       = "vibration"
	ENTITY_CLASS_DIAGNOSTIC      = "diagnostic"
	ATTR_ON                      = "on"
	ATTR_TEMPERATURE             = "temperature"
	ATTR_DARK                    = "dark"
	ATTR_ORIENTATION             = "orientation"
	ATTR_TILTANGLE               = "tiltangle"
	ATTR_VIBRATIONSTRENGTH       = "vibrationstrength"
	ENTITY_DOMAIN_BINARY_SENSOR  = "binary_sensor"
	ENTITY_PLATFORM              = "deconz"
)

// BinarySensorDescription is the static metadata deriving one entity from one
// aspect of a gateway sensor. Kind restricts the sensor types an entry
// applies to; empty means any type exposing the field. Value returns nil when
// the aspect is not applicable, which suppresses entity creation.
type BinarySensorDescription struct {
	Key               string
	Kind              deconz.SensorKind
	NameSuffix        string
	OldUniqueIDSuffix string
	DeviceClass       string
	EntityCategory    string
	ExtraAttributes   bool
	Value             func(sensor *deconz.Sensor) *bool
}

// BinarySensorDescriptions covers every binary-sensor aspect the bridge
// adapts. Order is fixed: entities are derived in table order.
var BinarySensorDescriptions = []BinarySensorDescription{
	{
		Key:             "alarm",
		Kind:            deconz.KindAlarm,
		DeviceClass:     DEVICE_CLASS_SAFETY,
		ExtraAttributes: true,
		Value:           func(s *deconz.Sensor) *bool { return s.State.Alarm },
	},
	{
		Key:             "carbon_monoxide",
		Kind:            deconz.KindCarbonMonoxide,
		DeviceClass:     DEVICE_CLASS_CO,
		ExtraAttributes: true,
		Value:           func(s *deconz.Sensor) *bool { return s.State.CarbonMonoxide },
	},
	{
		Key:             "fire",
		Kind:            deconz.KindFire,
		DeviceClass:     DEVICE_CLASS_SMOKE,
		ExtraAttributes: true,
		Value:           func(s *deconz.Sensor) *bool { return s.State.Fire },
	},
	{
		Key:               "in_test_mode",
		Kind:              deconz.KindFire,
		NameSuffix:        "Test Mode",
		OldUniqueIDSuffix: "test mode",
		DeviceClass:       DEVICE_CLASS_SMOKE,
		EntityCategory:    ENTITY_CLASS_DIAGNOSTIC,
		Value:             func(s *deconz.Sensor) *bool { return s.State.Test },
	},
	{
		Key:             "flag",
		Kind:            deconz.KindGenericFlag,
		ExtraAttributes: true,
		Value:           func(s *deconz.Sensor) *bool { return s.State.Flag },
	},
	{
		Key:             "open",
		Kind:            deconz.KindOpenClose,
		DeviceClass:     DEVICE_CLASS_OPENING,
		ExtraAttributes: true,
		Value:           func(s *deconz.Sensor) *bool { return s.State.Open },
	},
	{
		Key:             "presence",
		Kind:            deconz.KindPresence,
		DeviceClass:     DEVICE_CLASS_MOTION,
		ExtraAttributes: true,
		Value:           func(s *deconz.Sensor) *bool { return s.State.Presence },
	},
	{
		Key:             "vibration",
		Kind:            deconz.KindVibration,
		DeviceClass:     DEVICE_CLASS_VIBRATION,
		ExtraAttributes: true,
		Value:           func(s *deconz.Sensor) *bool { return s.State.Vibration },
	},
	{
		Key:             "water",
		Kind:            deconz.KindWater,
		DeviceClass:     DEVICE_CLASS_MOISTURE,
		ExtraAttributes: true,
		Value:           func(s *deconz.Sensor) *bool { return s.State.Water },
	},
	{
		Key:               "tampered",
		NameSuffix:        "Tampered",
		OldUniqueIDSuffix: "tampered",
		DeviceClass:       DEVICE_CLASS_TAMPER,
		EntityCategory:    ENTITY_CLASS_DIAGNOSTIC,
		Value:             func(s *deconz.Sensor) *bool { return s.State.Tampered },
	},
	{
		Key:               "low_battery",
		NameSuffix:        "Low Battery",
		OldUniqueIDSuffix: "low battery",
		DeviceClass:       DEVICE_CLASS_BATTERY,
		EntityCategory:    ENTITY_CLASS_DIAGNOSTIC,
		Value:             func(s *deconz.Sensor) *bool { return s.State.LowBattery },
	},
}

// BinarySensorEntity is one host entity derived from a (sensor, description)
// pair. It holds a reference to the live sensor record; state reads always
// reflect the gateway's current values.
type BinarySensorEntity struct {
	Sensor      *deconz.Sensor
	Device      Device
	Description BinarySensorDescription
}

func NewBinarySensorEntity(sensor *deconz.Sensor, device Device, description BinarySensorDescription) BinarySensorEntity {
	return BinarySensorEntity{
		Sensor:      sensor,
		Device:      device,
		Description: description,
	}
}

// HADevice is the discovery device this entity hangs from.
func (e BinarySensorEntity) HADevice() Device {
	return e.Device
}

// UniqueID is the sensor unique ID suffixed with the description key,
// giving at most one entity per (sensor, aspect) pair.
func (e BinarySensorEntity) UniqueID() string {
	return SuffixedUniqueID(e.Sensor.UniqueID, e.Description)
}

// ObjectID is the topic-safe form of the unique ID.
func (e BinarySensorEntity) ObjectID() string {
	return sanitizeID(e.Sensor.UniqueID) + "_" + e.Description.Key
}

func (e BinarySensorEntity) Name() string {
	if e.Description.NameSuffix != "" {
		return e.Sensor.Name + " " + e.Description.NameSuffix
	}
	return e.Sensor.Name
}

// IsOn returns the entity state, or nil when the underlying field is absent.
func (e BinarySensorEntity) IsOn() *bool {
	return e.Description.Value(e.Sensor)
}

// ExtraStateAttributes returns the auxiliary attributes of the entity. Only
// descriptions flagged for extra attributes expose any; presence sensors add
// the ambient-light flag when reported, vibration sensors always add
// orientation, tilt angle and vibration strength.
func (e BinarySensorEntity) ExtraStateAttributes() map[string]any {
	attrs := map[string]any{}

	if !e.Description.ExtraAttributes {
		return attrs
	}

	if e.Sensor.Config.On != nil {
		attrs[ATTR_ON] = *e.Sensor.Config.On
	}
	if temp := e.Sensor.InternalTemperature(); temp != nil {
		attrs[ATTR_TEMPERATURE] = *temp
	}

	switch e.Sensor.Type {
	case deconz.KindPresence:
		if e.Sensor.State.Dark != nil {
			attrs[ATTR_DARK] = *e.Sensor.State.Dark
		}
	case deconz.KindVibration:
		attrs[ATTR_ORIENTATION] = e.Sensor.State.Orientation
		attrs[ATTR_TILTANGLE] = e.Sensor.State.TiltAngle
		attrs[ATTR_VIBRATIONSTRENGTH] = e.Sensor.State.VibrationStrength
	}

	return attrs
}

// SuffixedUniqueID builds the current unique-ID form for a description.
func SuffixedUniqueID(sensorUniqueID string, description BinarySensorDescription) string {
	return sensorUniqueID + "-" + description.Key
}

// LegacyUniqueID builds the pre-suffix-scheme unique-ID form, derived from
// the device serial and the description's legacy suffix.
func LegacyUniqueID(sensorUniqueID string, description BinarySensorDescription) string {
	return deconz.SerialFromUniqueID(sensorUniqueID) + "-" + description.OldUniqueIDSuffix
}

var topicIdRegexp = regexp.MustCompile("[^a-z0-9_]")

func sanitizeID(id string) string {
	return topicIdRegexp.ReplaceAllString(strings.ToLower(strings.ReplaceAll(id, ":", "")), "_")
}
