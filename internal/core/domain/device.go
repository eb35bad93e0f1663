package domain

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/berfenger/deconz2mqtt/pkg/deconz"

	"github.com/carlmjohnson/versioninfo"
)

// Device is the HA discovery device a set of entities hangs from.
type Device struct {
	Id           string
	Name         string
	Version      string
	Model        string
	Manufacturer string
	ViaDevice    string
}

func BridgeDevice(baseTopic string) Device {
	return Device{
		Id:           fmt.Sprintf("deconz2mqtt_bridge_%s", md5HashShort(baseTopic)),
		Manufacturer: "ACasal",
		Model:        "deconz2mqtt",
		Version:      versioninfo.Short(),
		Name:         fmt.Sprintf("deconz2mqtt %s", md5HashShort(baseTopic)),
	}
}

// SensorDevice models the physical device behind a gateway sensor. All
// entities derived from one sensor share it, keyed by the device serial.
func SensorDevice(sensor *deconz.Sensor, bridge Device) Device {
	serial := deconz.SerialFromUniqueID(sensor.UniqueID)
	return Device{
		Id:           fmt.Sprintf("dcz_%s", md5HashShort(serial)),
		Version:      sensor.SWVersion,
		Manufacturer: sensor.ManufacturerName,
		Model:        sensor.ModelID,
		Name:         sensor.Name,
		ViaDevice:    bridge.Id,
	}
}

func md5Hash(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}

func md5HashShort(text string) string {
	return md5Hash(text)[0:8]
}
