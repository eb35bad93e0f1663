package deconz

import "strings"

// SensorKind is the deCONZ resource type of a sensor.
type SensorKind string

const (
	KindAlarm          SensorKind = "ZHAAlarm"
	KindCarbonMonoxide SensorKind = "ZHACarbonMonoxide"
	KindFire           SensorKind = "ZHAFire"
	KindGenericFlag    SensorKind = "CLIPGenericFlag"
	KindOpenClose      SensorKind = "ZHAOpenClose"
	KindPresence       SensorKind = "ZHAPresence"
	KindVibration      SensorKind = "ZHAVibration"
	KindWater          SensorKind = "ZHAWater"
)

// Sensor is one gateway sensor resource. The JSON shape mirrors an entry of
// the deCONZ REST /sensors document, so snapshots bind directly.
// Optional fields are pointers; nil means the gateway does not expose them.
type Sensor struct {
	ID               string       `json:"-"`
	Type             SensorKind   `json:"type"`
	Name             string       `json:"name"`
	UniqueID         string       `json:"uniqueid"`
	ManufacturerName string       `json:"manufacturername"`
	ModelID          string       `json:"modelid"`
	SWVersion        string       `json:"swversion"`
	Config           SensorConfig `json:"config"`
	State            SensorState  `json:"state"`
}

type SensorConfig struct {
	On        *bool `json:"on,omitempty"`
	Reachable *bool `json:"reachable,omitempty"`
	Battery   *int  `json:"battery,omitempty"`
	// Device internal temperature in hundredths of a degree Celsius.
	Temperature *int `json:"temperature,omitempty"`
}

type SensorState struct {
	Alarm             *bool  `json:"alarm,omitempty"`
	CarbonMonoxide    *bool  `json:"carbonmonoxide,omitempty"`
	Fire              *bool  `json:"fire,omitempty"`
	Test              *bool  `json:"test,omitempty"`
	Flag              *bool  `json:"flag,omitempty"`
	Open              *bool  `json:"open,omitempty"`
	Presence          *bool  `json:"presence,omitempty"`
	Dark              *bool  `json:"dark,omitempty"`
	Vibration         *bool  `json:"vibration,omitempty"`
	Water             *bool  `json:"water,omitempty"`
	Tampered          *bool  `json:"tampered,omitempty"`
	LowBattery        *bool  `json:"lowbattery,omitempty"`
	Orientation       []int  `json:"orientation,omitempty"`
	TiltAngle         *int   `json:"tiltangle,omitempty"`
	VibrationStrength *int   `json:"vibrationstrength,omitempty"`
	LastUpdated       string `json:"lastupdated,omitempty"`
}

// InternalTemperature returns the device internal temperature in °C,
// or nil if the sensor does not report one.
func (s *Sensor) InternalTemperature() *float64 {
	if s.Config.Temperature == nil {
		return nil
	}
	t := float64(*s.Config.Temperature) / 100
	return &t
}

// Merge overlays the non-nil fields of patch onto the current state.
func (st *SensorState) Merge(patch SensorState) {
	merge := func(dst **bool, src *bool) {
		if src != nil {
			*dst = src
		}
	}
	merge(&st.Alarm, patch.Alarm)
	merge(&st.CarbonMonoxide, patch.CarbonMonoxide)
	merge(&st.Fire, patch.Fire)
	merge(&st.Test, patch.Test)
	merge(&st.Flag, patch.Flag)
	merge(&st.Open, patch.Open)
	merge(&st.Presence, patch.Presence)
	merge(&st.Dark, patch.Dark)
	merge(&st.Vibration, patch.Vibration)
	merge(&st.Water, patch.Water)
	merge(&st.Tampered, patch.Tampered)
	merge(&st.LowBattery, patch.LowBattery)
	if patch.Orientation != nil {
		st.Orientation = patch.Orientation
	}
	if patch.TiltAngle != nil {
		st.TiltAngle = patch.TiltAngle
	}
	if patch.VibrationStrength != nil {
		st.VibrationStrength = patch.VibrationStrength
	}
	if patch.LastUpdated != "" {
		st.LastUpdated = patch.LastUpdated
	}
}

// SerialFromUniqueID extracts the device serial (MAC) from a sensor unique ID
// like "00:15:8d:00:02:b4:6c:e5-01-0406".
func SerialFromUniqueID(uniqueID string) string {
	serial, _, _ := strings.Cut(uniqueID, "-")
	return serial
}
