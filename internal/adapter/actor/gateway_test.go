package actor

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/berfenger/deconz2mqtt/internal/adapter/registry"
	"github.com/berfenger/deconz2mqtt/internal/core/domain"
	"github.com/berfenger/deconz2mqtt/internal/util"
	"github.com/berfenger/deconz2mqtt/pkg/deconz"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []any
}

func (r *eventRecorder) record(value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, value)
}

func (r *eventRecorder) snapshot() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any{}, r.events...)
}

func spawnTestGateway(t *testing.T, snapshotFile string) (*actor.RootContext, *actor.PID, *eventRecorder, func()) {

	cfg := util.LoadTestConfig()
	cfg.Gateway.SnapshotFile = snapshotFile

	logger := zap.NewNop()

	as := actor.NewActorSystem()
	context := as.Root

	es := &eventstream.EventStream{}
	recorder := &eventRecorder{}
	es.Subscribe(recorder.record)

	mqttProps := actor.PropsFromProducer(func() actor.Actor { return NewTestMQTTActor(&cfg, logger) })
	mqttPID := context.Spawn(mqttProps)

	props := actor.PropsFromProducer(func() actor.Actor {
		return NewGatewayActor(&cfg, registry.NewMemory(), mqttPID, es, logger)
	})
	pid := context.Spawn(props)

	return context, pid, recorder, func() {
		context.Stop(pid)
		context.Stop(mqttPID)
		as.Shutdown()
	}
}

func TestGatewayActorAddAndUpdate(t *testing.T) {

	assert := assert.New(t)

	context, pid, recorder, stop := spawnTestGateway(t, "")
	defer stop()

	time.Sleep(500 * time.Millisecond)

	res, err := context.RequestFuture(pid, domain.AddSensorRequest{
		Sensor: deconz.TestVibrationSensor(),
	}, 5*time.Second).Result()
	assert.NoError(err)
	addResp, ok := res.(domain.AddSensorResponse)
	assert.True(ok)
	assert.Equal("2", addResp.SensorId)
	// vibration plus both diagnostics are present on this sensor
	assert.Len(addResp.EntityUniqueIds, 3)

	// initial state went out on the event bus
	var stateEvents, attrEvents int
	for _, ev := range recorder.snapshot() {
		switch ev.(type) {
		case domain.BinarySensorStateUpdateEvent:
			stateEvents++
		case domain.EntityAttributesUpdateEvent:
			attrEvents++
		}
	}
	assert.Equal(3, stateEvents)
	assert.Equal(1, attrEvents, "only the vibration entity carries attributes")

	// a state patch fires the updated callbacks
	res, err = context.RequestFuture(pid, domain.UpdateSensorStateRequest{
		SensorId: addResp.SensorId,
		State:    deconz.SensorState{TiltAngle: deconz.Int(45)},
	}, 5*time.Second).Result()
	assert.NoError(err)
	updResp, ok := res.(domain.UpdateSensorStateResponse)
	assert.True(ok)
	assert.False(updResp.HasResponseError())

	found := false
	for _, ev := range recorder.snapshot() {
		if attrs, ok := ev.(domain.EntityAttributesUpdateEvent); ok {
			if angle, ok := attrs.Attributes[domain.ATTR_TILTANGLE].(*int); ok && angle != nil && *angle == 45 {
				found = true
			}
		}
	}
	assert.True(found, "updated tilt angle reaches the event bus")
}

func TestGatewayActorSnapshotLoad(t *testing.T) {

	assert := assert.New(t)

	snapshot := `{
		"1": {"type": "ZHAPresence", "name": "Hall motion", "uniqueid": "00:15:8d:00:02:b4:6c:e5-01-0406",
			"config": {"on": true}, "state": {"presence": false}},
		"2": {"type": "ZHAFire", "name": "Kitchen smoke", "uniqueid": "00:15:8d:00:01:d9:3e:7c-01-0500",
			"config": {"on": true}, "state": {"fire": false, "lowbattery": false}}
	}`
	file := filepath.Join(t.TempDir(), "sensors.json")
	assert.NoError(os.WriteFile(file, []byte(snapshot), 0o644))

	context, pid, _, stop := spawnTestGateway(t, file)
	defer stop()

	time.Sleep(1 * time.Second)

	res, err := context.RequestFuture(pid, domain.ListSensorsRequest{}, 5*time.Second).Result()
	assert.NoError(err)
	listResp, ok := res.(domain.ListSensorsResponse)
	assert.True(ok)
	assert.Len(listResp.Sensors, 2)
	assert.Equal("Hall motion", listResp.Sensors[0].Name)
	assert.Equal("Kitchen smoke", listResp.Sensors[1].Name)
}
