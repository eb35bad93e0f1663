package deconz

// Canned sensors for tests and the dummy actors.

func TestPresenceSensor() *Sensor {
	return &Sensor{
		ID:               "1",
		Type:             KindPresence,
		Name:             "Hall motion",
		UniqueID:         "00:15:8d:00:02:b4:6c:e5-01-0406",
		ManufacturerName: "LUMI",
		ModelID:          "lumi.sensor_motion.aq2",
		SWVersion:        "20170627",
		Config: SensorConfig{
			On:          Bool(true),
			Battery:     Int(100),
			Temperature: Int(2600),
		},
		State: SensorState{
			Presence: Bool(false),
			Dark:     Bool(true),
		},
	}
}

func TestVibrationSensor() *Sensor {
	return &Sensor{
		ID:               "2",
		Type:             KindVibration,
		Name:             "Mailbox",
		UniqueID:         "00:15:8d:00:02:a5:21:24-01-0101",
		ManufacturerName: "LUMI",
		ModelID:          "lumi.vibration.aq1",
		SWVersion:        "20180130",
		Config: SensorConfig{
			On:          Bool(true),
			Temperature: Int(3200),
		},
		State: SensorState{
			Vibration:         Bool(true),
			Orientation:       []int{10, 1059, 0},
			TiltAngle:         Int(83),
			VibrationStrength: Int(114),
			Tampered:          Bool(false),
			LowBattery:        Bool(false),
		},
	}
}

func TestFireSensor() *Sensor {
	return &Sensor{
		ID:               "3",
		Type:             KindFire,
		Name:             "Kitchen smoke",
		UniqueID:         "00:15:8d:00:01:d9:3e:7c-01-0500",
		ManufacturerName: "LUMI",
		ModelID:          "lumi.sensor_smoke",
		SWVersion:        "20170505",
		Config: SensorConfig{
			On: Bool(true),
		},
		State: SensorState{
			Fire:       Bool(false),
			Test:       Bool(false),
			LowBattery: Bool(false),
		},
	}
}

func TestWaterSensor() *Sensor {
	return &Sensor{
		ID:               "4",
		Type:             KindWater,
		Name:             "Cellar leak",
		UniqueID:         "00:15:8d:00:02:11:22:33-01-0500",
		ManufacturerName: "LUMI",
		ModelID:          "lumi.sensor_wleak.aq1",
		SWVersion:        "20170721",
		Config: SensorConfig{
			On:          Bool(true),
			Temperature: Int(2375),
		},
		State: SensorState{
			Water:    Bool(false),
			Tampered: Bool(false),
		},
	}
}

// Bool returns a pointer to value, for building optional sensor fields.
func Bool(value bool) *bool {
	return &value
}

// Int returns a pointer to value, for building optional sensor fields.
func Int(value int) *int {
	return &value
}
