package deconz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sensorsDocument = `{
	"2": {
		"config": {"on": true, "battery": 91, "temperature": 3200},
		"manufacturername": "LUMI",
		"modelid": "lumi.vibration.aq1",
		"name": "Mailbox",
		"state": {"vibration": true, "orientation": [10, 1059, 0], "tiltangle": 83, "vibrationstrength": 114},
		"swversion": "20180130",
		"type": "ZHAVibration",
		"uniqueid": "00:15:8d:00:02:a5:21:24-01-0101"
	},
	"10": {
		"config": {"on": true},
		"manufacturername": "LUMI",
		"modelid": "lumi.sensor_motion.aq2",
		"name": "Hall motion",
		"state": {"presence": false, "dark": true},
		"swversion": "20170627",
		"type": "ZHAPresence",
		"uniqueid": "00:15:8d:00:02:b4:6c:e5-01-0406"
	}
}`

func TestParseSensors(t *testing.T) {

	require := require.New(t)

	sensors, err := ParseSensors([]byte(sensorsDocument))
	require.NoError(err)
	require.Len(sensors, 2)

	// numeric ID order, not lexicographic
	assert.Equal(t, "2", sensors[0].ID)
	assert.Equal(t, "10", sensors[1].ID)

	vib := sensors[0]
	assert.Equal(t, KindVibration, vib.Type)
	require.NotNil(vib.State.Vibration)
	assert.True(t, *vib.State.Vibration)
	assert.Equal(t, []int{10, 1059, 0}, vib.State.Orientation)
	require.NotNil(vib.Config.Temperature)
	assert.Equal(t, 3200, *vib.Config.Temperature)

	presence := sensors[1]
	assert.Equal(t, KindPresence, presence.Type)
	require.NotNil(presence.State.Dark)
	assert.True(t, *presence.State.Dark)
	assert.Nil(t, presence.State.Tampered, "field absent in document")
}

func TestParseSensorsInvalid(t *testing.T) {

	_, err := ParseSensors([]byte("not json"))
	assert.Error(t, err)
}
