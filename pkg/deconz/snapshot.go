package deconz

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// ParseSensors decodes a deCONZ REST /sensors document (sensors keyed by
// resource ID) into a slice ordered by numeric ID.
func ParseSensors(data []byte) ([]*Sensor, error) {
	var keyed map[string]*Sensor
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("parse sensors: %w", err)
	}
	sensors := make([]*Sensor, 0, len(keyed))
	for id, sensor := range keyed {
		sensor.ID = id
		sensors = append(sensors, sensor)
	}
	sort.Slice(sensors, func(i, j int) bool {
		a, errA := strconv.Atoi(sensors[i].ID)
		b, errB := strconv.Atoi(sensors[j].ID)
		if errA != nil || errB != nil {
			return sensors[i].ID < sensors[j].ID
		}
		return a < b
	})
	return sensors, nil
}

// LoadSnapshot reads a /sensors document from a file.
func LoadSnapshot(path string) ([]*Sensor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSensors(data)
}
